// Package geojson provides a file-backed feature source reading GeoJSON
// feature collections, the flat-file stand-in for a desktop GIS layer
// lookup. Geometry is re-encoded as well-known text for the aggregator.
package geojson

import (
	"os"

	"github.com/paulmach/orb/encoding/wkt"
	orbgeojson "github.com/paulmach/orb/geojson"

	"github.com/cartomesh/atlasmap/pkg/atlas"
	"github.com/cartomesh/atlasmap/pkg/constants"
	"github.com/cartomesh/atlasmap/pkg/errors"
	"github.com/cartomesh/atlasmap/pkg/sources"
)

// Source reads features from a GeoJSON file on disk.
type Source struct {
	id         sources.ID
	name       string
	resolution atlas.Resolution
	path       string
}

// Compile-time interface check to ensure proper implementation.
var _ sources.Source = (*Source)(nil)

// New creates a GeoJSON file source for the given layer and tier.
func New(layer sources.Layer, path string) *Source {
	return &Source{
		id:         layer.ID,
		name:       layer.Name,
		resolution: layer.Resolution,
		path:       path,
	}
}

// ID returns the source identifier.
func (s *Source) ID() sources.ID {
	return s.id
}

// Name returns the layer name.
func (s *Source) Name() string {
	return s.name
}

// Resolution returns the tier this source contributes to.
func (s *Source) Resolution() atlas.Resolution {
	return s.resolution
}

// Features reads and decodes the GeoJSON file. Features lacking the ADMIN
// or ADM0_A3 properties come back with empty fields; the aggregator decides
// whether to skip them.
func (s *Source) Features() ([]sources.Feature, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.WrapSource(s.id.String(), s.name, errors.WrapIO("read", s.path, err))
	}

	fc, err := orbgeojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.WrapSource(s.id.String(), s.name, errors.WrapParse("geojson", s.path, err))
	}

	features := make([]sources.Feature, 0, len(fc.Features))
	for _, f := range fc.Features {
		feature := sources.Feature{
			DisplayName: stringProperty(f, constants.AdminField),
			EntityKey:   stringProperty(f, constants.EntityKeyField),
		}
		if f.Geometry != nil {
			feature.WKT = wkt.MarshalString(f.Geometry)
		}
		features = append(features, feature)
	}
	return features, nil
}

// stringProperty reads a string-valued GeoJSON property, returning "" when
// absent or of another type.
func stringProperty(f *orbgeojson.Feature, key string) string {
	value, ok := f.Properties[key].(string)
	if !ok {
		return ""
	}
	return value
}
