// Package corners detects intended sharp corners in sampled boundary
// points by comparing averaged direction vectors of point batches.
// Batch-averaged directions deliberately smooth over single-sample jitter
// that per-point angle tests over-trigger on.
package corners

import (
	"fmt"
	"sort"

	"github.com/lamdangelo/sketchmesh/internal/domain"
	"github.com/lamdangelo/sketchmesh/internal/ports"
)

const (
	// DefaultNumBatches is the number of equal point batches the
	// boundary is partitioned into.
	DefaultNumBatches = 8

	// DefaultThreshold is the Euclidean distance between unit batch
	// directions above which a corner is declared. The maximum possible
	// distance is 2.0 (a full direction reversal).
	DefaultThreshold = 1.0
)

type Detector struct {
	numBatches int
	threshold  float64
}

var _ ports.CornerDetector = (*Detector)(nil)

type Option func(*Detector)

func WithNumBatches(n int) Option {
	return func(d *Detector) { d.numBatches = n }
}

func WithThreshold(t float64) Option {
	return func(d *Detector) { d.threshold = t }
}

func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		numBatches: DefaultNumBatches,
		threshold:  DefaultThreshold,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectCorners returns the sorted unique point indices at which the
// averaged direction changes by more than the threshold. For closed
// curves the wrap-around between the last and first batch is tested too.
func (d *Detector) DetectCorners(points []domain.Point, closed bool) ([]int, error) {
	if len(points) < 3 {
		return nil, &domain.OpError{
			Op:   "corners.detect",
			Kind: domain.KindTooFewPoints,
			Err:  fmt.Errorf("need at least 3 points, got %d", len(points)),
		}
	}

	numBatches := d.numBatches
	if numBatches > len(points) {
		numBatches = len(points)
	}
	if numBatches < 2 {
		return nil, nil
	}

	starts, directions := batchDirections(points, numBatches)

	cornerSet := map[int]struct{}{}
	for i := 0; i < numBatches-1; i++ {
		if directions[i].DistanceTo(directions[i+1]) > d.threshold {
			// Boundary between batch i and i+1: the start of the later
			// batch.
			cornerSet[starts[i+1]] = struct{}{}
		}
	}
	if closed && directions[numBatches-1].DistanceTo(directions[0]) > d.threshold {
		cornerSet[starts[0]] = struct{}{}
	}

	out := make([]int, 0, len(cornerSet))
	for idx := range cornerSet {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out, nil
}

// batchDirections partitions the points into numBatches equal batches and
// returns each batch's start index and unit average direction (the zero
// point for degenerate batches).
func batchDirections(points []domain.Point, numBatches int) (starts []int, directions []domain.Point) {
	n := len(points)
	starts = make([]int, numBatches)
	directions = make([]domain.Point, numBatches)

	for b := 0; b < numBatches; b++ {
		start := b * n / numBatches
		end := (b + 1) * n / numBatches
		starts[b] = start

		var sum domain.Point
		for i := start; i < end-1; i++ {
			sum = sum.Add(points[i+1].Sub(points[i]))
		}
		directions[b] = sum.Normalize()
	}
	return starts, directions
}
