// Package sources defines the feature-source boundary for the aggregation
// pipeline. A Source supplies feature records for one geometry layer at one
// resolution tier; any data source able to produce display names, entity
// keys, and well-known-text geometry can feed the aggregator — a GeoJSON
// file, a database cursor, or an in-memory test fixture.
package sources

import (
	"slices"

	"github.com/cartomesh/atlasmap/pkg/atlas"
)

// ID represents the identifier of a feature source.
type ID string

// String returns the string representation of a source ID.
func (id ID) String() string {
	return string(id)
}

// Common source IDs, one per resolution tier.
const (
	LowResID    ID = "low_res"
	MediumResID ID = "medium_res"
	HighResID   ID = "high_res"
)

// IDs returns all defined source IDs.
func IDs() []ID {
	return []ID{LowResID, MediumResID, HighResID}
}

// IsValid returns true if the ID is one of the defined constants.
func (id ID) IsValid() bool {
	return slices.Contains(IDs(), id)
}

// Feature is one record from a geometry layer. WKT is the feature geometry
// serialized as well-known text; an empty string signals absent geometry.
type Feature struct {
	DisplayName string
	EntityKey   string
	WKT         string
}

// Source supplies feature records for a single layer at a single tier.
type Source interface {
	// ID returns the source identifier
	ID() ID

	// Name returns the layer name, used as area provenance
	Name() string

	// Resolution returns the tier this source contributes to
	Resolution() atlas.Resolution

	// Features returns all feature records from this source. A non-nil
	// error means the source is missing or invalid; the caller treats
	// that as a zero contribution, never as a fatal failure.
	Features() ([]Feature, error)
}
