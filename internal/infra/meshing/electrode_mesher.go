package meshing

import (
	"fmt"
	"sort"

	"github.com/lamdangelo/sketchmesh/internal/domain"
	"github.com/lamdangelo/sketchmesh/internal/ports"
)

type ElectrodeMesher struct{}

var _ ports.ElectrodeMesher = (*ElectrodeMesher)(nil)

func NewElectrodeMesher() *ElectrodeMesher {
	return &ElectrodeMesher{}
}

// MeshElectrodes creates one engine point per electrode and tags the
// points by coil polarity. Electrodes are named coil_1, coil_2, ... in
// reading order (top to bottom, ties left to right); the configuration
// must carry a current sign for every name.
func (m *ElectrodeMesher) MeshElectrodes(b ports.GeometryBuilder, cfg domain.SimulationConfig, electrodes []domain.Electrode) ([]domain.ElectrodeRecord, error) {
	ordered := make([]domain.Electrode, len(electrodes))
	copy(ordered, electrodes)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Center.Y != ordered[j].Center.Y {
			return ordered[i].Center.Y > ordered[j].Center.Y
		}
		return ordered[i].Center.X < ordered[j].Center.X
	})

	records := make([]domain.ElectrodeRecord, 0, len(ordered))
	var positive, negative []int
	for i, e := range ordered {
		name := fmt.Sprintf("coil_%d", i+1)
		sign, ok := cfg.CoilCurrents[name]
		if !ok {
			return nil, &domain.OpError{
				Op:   "meshing.electrodes",
				Kind: domain.KindMissingPolarity,
				Err:  fmt.Errorf("no current sign configured for %s", name),
			}
		}

		tag, err := b.AddPoint(e.Center.X, e.Center.Y)
		if err != nil {
			return nil, err
		}

		group := domain.DomainCoilPositive
		if sign < 0 {
			group = domain.DomainCoilNegative
			negative = append(negative, tag)
		} else {
			positive = append(positive, tag)
		}
		records = append(records, domain.ElectrodeRecord{
			Index:    i,
			Center:   e.Center,
			CoilName: name,
			PointTag: tag,
			Group:    group,
		})
	}

	if len(positive) > 0 {
		if err := b.AddPhysicalGroup(0, positive, domain.DomainCoilPositive.Value()); err != nil {
			return nil, err
		}
	}
	if len(negative) > 0 {
		if err := b.AddPhysicalGroup(0, negative, domain.DomainCoilNegative.Value()); err != nil {
			return nil, err
		}
	}
	return records, nil
}
