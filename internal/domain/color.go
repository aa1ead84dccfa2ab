package domain

import "fmt"

// Color is one of the fixed sketch colors. The set is closed: red, green
// and blue are the primary colors, and black is a domain marker valid only
// on boundary curves. The zero value is not a valid color.
type Color struct {
	name string
	rgb  [3]uint8
}

var (
	Red   = Color{name: "red", rgb: [3]uint8{255, 0, 0}}
	Green = Color{name: "green", rgb: [3]uint8{0, 255, 0}}
	Blue  = Color{name: "blue", rgb: [3]uint8{0, 0, 255}}
	Black = Color{name: "black", rgb: [3]uint8{0, 0, 0}}
)

// Colors lists the valid colors in a fixed order.
func Colors() []Color {
	return []Color{Red, Green, Blue, Black}
}

// ParseColorName resolves a color by name.
func ParseColorName(name string) (Color, error) {
	for _, c := range Colors() {
		if c.name == name {
			return c, nil
		}
	}
	return Color{}, &OpError{
		Op:   "domain.parse_color",
		Kind: KindUnknownColor,
		Err:  fmt.Errorf("unknown color %q", name),
	}
}

func (c Color) Name() string { return c.name }

// RGB returns the 8-bit color components.
func (c Color) RGB() (r, g, b uint8) {
	return c.rgb[0], c.rgb[1], c.rgb[2]
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.rgb[0], c.rgb[1], c.rgb[2])
}

// IsZero reports whether c is the invalid zero value.
func (c Color) IsZero() bool { return c.name == "" }

func (c Color) String() string { return c.name }
