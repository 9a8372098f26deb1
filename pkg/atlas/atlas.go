// Package atlas defines the unified territory data model: per-entity
// composite regions holding one geometry area per resolution tier, keyed by
// 3-letter entity codes or generated UUIDs, inside a fixed 360x180 degree
// coordinate space.
//
// The package also owns the deterministic key ordering contract: entity keys
// (exactly 3 characters) sort before synthetic IDs, lexicographically within
// each group. Every serialization goes through that order so output is
// reproducible regardless of map iteration.
package atlas

import (
	"strings"

	"github.com/cartomesh/atlasmap/pkg/constants"
)

// SourceMetadata records the provenance of a geometry area.
type SourceMetadata struct {
	// LayerName is the originating source layer
	LayerName string `json:"layerName" yaml:"layerName"`

	// EntityIdentifier is the entity-identifying descriptor from the source,
	// e.g. "ADMIN=United States of America"
	EntityIdentifier string `json:"entityIdentifier" yaml:"entityIdentifier"`
}

// Area is one resolution tier's contribution for an entity: a geometry
// serialized as well-known text plus provenance. AreaWKT may be empty only
// on placeholder regions fabricated by the matcher.
type Area struct {
	AreaWKT        string         `json:"areaWKT" yaml:"areaWKT"`
	SourceMetadata SourceMetadata `json:"sourceMetadata" yaml:"sourceMetadata"`
}

// HasGeometry returns true if the area carries non-blank well-known text.
func (a Area) HasGeometry() bool {
	return strings.TrimSpace(a.AreaWKT) != ""
}

// Region is the per-entity composite record: a display name plus one area
// per resolution tier that contributed geometry.
type Region struct {
	RegionName string              `json:"regionName" yaml:"regionName"`
	Areas      map[Resolution]Area `json:"areas" yaml:"areas"`
}

// NewRegion creates an empty region with the given display name.
func NewRegion(name string) *Region {
	return &Region{
		RegionName: name,
		Areas:      make(map[Resolution]Area),
	}
}

// HasAreas returns true if the region has at least one area. A region with
// no areas is invalid in final output and is pruned after aggregation.
func (r *Region) HasAreas() bool {
	return len(r.Areas) > 0
}

// Copy returns a deep copy of the region.
func (r *Region) Copy() *Region {
	out := NewRegion(r.RegionName)
	for res, area := range r.Areas {
		out.Areas[res] = area
	}
	return out
}

// Regions maps an entity key or synthetic ID to its composite region.
type Regions map[string]*Region

// Atlas is the unified territory collection. Height and Width are canonical
// constants of the coordinate space, not derived from data.
type Atlas struct {
	Regions Regions `json:"regions" yaml:"regions"`
	Height  int     `json:"height" yaml:"height"`
	Width   int     `json:"width" yaml:"width"`
}

// New creates an empty atlas with canonical grid dimensions.
func New() *Atlas {
	return &Atlas{
		Regions: make(Regions),
		Height:  constants.GridHeight,
		Width:   constants.GridWidth,
	}
}

// Len returns the number of regions in the atlas.
func (a *Atlas) Len() int {
	return len(a.Regions)
}

// Keys returns all region keys in deterministic order: entity keys first,
// then synthetic IDs, each group sorted lexicographically.
func (a *Atlas) Keys() []string {
	keys := make([]string, 0, len(a.Regions))
	for key := range a.Regions {
		keys = append(keys, key)
	}
	SortKeys(keys)
	return keys
}

// IsEntityKey reports whether a region key is a real entity key rather than
// a synthetic ID. Entity keys are exactly 3 characters; synthetic IDs are
// UUID strings and never are.
func IsEntityKey(key string) bool {
	return len(key) == constants.EntityKeyLength
}
