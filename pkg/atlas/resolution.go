package atlas

import (
	"slices"

	"github.com/cartomesh/atlasmap/pkg/constants"
)

// Resolution identifies the precision tier of a geometry source.
type Resolution string

// String returns the string representation of a resolution tier.
func (r Resolution) String() string {
	return string(r)
}

// Resolution tiers, from coarsest to finest.
const (
	LowRes    Resolution = "low-res"
	MediumRes Resolution = "medium-res"
	HighRes   Resolution = "high-res"
)

// Resolutions returns all resolution tiers in canonical order.
func Resolutions() []Resolution {
	return []Resolution{LowRes, MediumRes, HighRes}
}

// IsValid returns true if the resolution is one of the defined tiers.
func (r Resolution) IsValid() bool {
	return slices.Contains(Resolutions(), r)
}

// Layer returns the canonical Natural Earth layer name for this tier.
// Placeholder provenance references these names even when no source was read.
func (r Resolution) Layer() string {
	switch r {
	case LowRes:
		return constants.LowResLayer
	case MediumRes:
		return constants.MediumResLayer
	case HighRes:
		return constants.HighResLayer
	default:
		return ""
	}
}
