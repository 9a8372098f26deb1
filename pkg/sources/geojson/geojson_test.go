package geojson

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartomesh/atlasmap/pkg/atlas"
	"github.com/cartomesh/atlasmap/pkg/errors"
	"github.com/cartomesh/atlasmap/pkg/sources"
)

const fixture = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"ADMIN": "United States of America", "ADM0_A3": "USA"},
      "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,0]]]}
    },
    {
      "type": "Feature",
      "properties": {"NAME": "no admin fields here"},
      "geometry": {"type": "Point", "coordinates": [2,2]}
    }
  ]
}`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layer.geojson")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFeatures(t *testing.T) {
	src := New(sources.LayerFor(atlas.LowRes), writeFixture(t, fixture))

	assert.Equal(t, sources.LowResID, src.ID())
	assert.Equal(t, atlas.LowRes.Layer(), src.Name())
	assert.Equal(t, atlas.LowRes, src.Resolution())

	features, err := src.Features()
	require.NoError(t, err)
	require.Len(t, features, 2)

	assert.Equal(t, "United States of America", features[0].DisplayName)
	assert.Equal(t, "USA", features[0].EntityKey)
	assert.Contains(t, features[0].WKT, "POLYGON")

	// Features without the expected attributes come back with empty
	// fields; the aggregator is the one that skips them.
	assert.Empty(t, features[1].DisplayName)
	assert.Empty(t, features[1].EntityKey)
	assert.NotEmpty(t, features[1].WKT)
}

func TestFeaturesMissingFile(t *testing.T) {
	src := New(sources.LayerFor(atlas.HighRes), filepath.Join(t.TempDir(), "absent.geojson"))

	_, err := src.Features()
	require.Error(t, err)
	assert.True(t, errors.IsSourceUnavailable(err))
}

func TestFeaturesMalformedFile(t *testing.T) {
	src := New(sources.LayerFor(atlas.MediumRes), writeFixture(t, "{not geojson"))

	_, err := src.Features()
	require.Error(t, err)
	assert.True(t, errors.IsSourceUnavailable(err))
}
