package atlasmap_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartomesh/atlasmap"
	"github.com/cartomesh/atlasmap/pkg/atlas"
	"github.com/cartomesh/atlasmap/pkg/errors"
	"github.com/cartomesh/atlasmap/pkg/logging"
	"github.com/cartomesh/atlasmap/pkg/sources"
)

const polyWKT = "POLYGON((0 0,1 0,1 1,0 0))"

const fixedID = "f47ac10b-58cc-4372-a567-0e02b2c3d479"

func usaSource() sources.Source {
	return sources.NewStatic(sources.LowResID, atlas.LowRes.Layer(), atlas.LowRes, []sources.Feature{
		{DisplayName: "United States of America", EntityKey: "USA", WKT: polyWKT},
	})
}

func writeNames(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "names.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestPipelineEndToEnd(t *testing.T) {
	output := filepath.Join(t.TempDir(), "matched_territories.json")

	pipeline, err := atlasmap.New(
		atlasmap.WithSources(usaSource()),
		atlasmap.WithNamesFile(writeNames(t, "United States of America\nAtlantis\n")),
		atlasmap.WithOutput(output),
		atlasmap.WithIDGenerator(func() string { return fixedID }),
		atlasmap.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)

	result, err := pipeline.Run()
	require.NoError(t, err)

	assert.Equal(t, 1, result.Aggregated)
	assert.Equal(t, 1, result.Matched)
	assert.Equal(t, 1, result.Unmatched)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 2, result.Regions)
	assert.Equal(t, output, result.OutputPath)

	loaded, err := atlas.Load(output)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())

	usa := loaded.Regions["USA"]
	require.NotNil(t, usa)
	assert.Equal(t, "United States of America", usa.RegionName)
	require.Len(t, usa.Areas, 1)
	assert.Equal(t, polyWKT, usa.Areas[atlas.LowRes].AreaWKT)

	placeholder := loaded.Regions[fixedID]
	require.NotNil(t, placeholder)
	assert.Equal(t, "Atlantis", placeholder.RegionName)
	require.Len(t, placeholder.Areas, 3)
	for _, res := range atlas.Resolutions() {
		assert.Empty(t, placeholder.Areas[res].AreaWKT)
	}

	// Entity key precedes the synthetic ID in the serialized artifact.
	assert.Equal(t, []string{"USA", fixedID}, loaded.Keys())
}

func TestPipelineAggregateOutput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "matched.json")
	aggregateOut := filepath.Join(dir, "aggregate.json")

	pipeline, err := atlasmap.New(
		atlasmap.WithSources(usaSource()),
		atlasmap.WithNames([]string{"Atlantis"}),
		atlasmap.WithOutput(output),
		atlasmap.WithAggregateOutput(aggregateOut),
		atlasmap.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)

	_, err = pipeline.Run()
	require.NoError(t, err)

	aggregated, err := atlas.Load(aggregateOut)
	require.NoError(t, err)
	assert.Contains(t, aggregated.Regions, "USA")
}

func TestPipelineYAMLFormat(t *testing.T) {
	output := filepath.Join(t.TempDir(), "matched.yaml")

	pipeline, err := atlasmap.New(
		atlasmap.WithSources(usaSource()),
		atlasmap.WithNames([]string{"United States of America"}),
		atlasmap.WithOutput(output),
		atlasmap.WithFormat(atlas.FormatYAML),
		atlasmap.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)

	_, err = pipeline.Run()
	require.NoError(t, err)

	loaded, err := atlas.Load(output)
	require.NoError(t, err)
	assert.Contains(t, loaded.Regions, "USA")
}

func TestPipelineOutputIsValidSchema(t *testing.T) {
	output := filepath.Join(t.TempDir(), "matched.json")

	pipeline, err := atlasmap.New(
		atlasmap.WithSources(usaSource()),
		atlasmap.WithNames([]string{"United States of America"}),
		atlasmap.WithOutput(output),
		atlasmap.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)

	_, err = pipeline.Run()
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "regions")
	assert.Contains(t, raw, "height")
	assert.Contains(t, raw, "width")
	assert.JSONEq(t, "180", string(raw["height"]))
	assert.JSONEq(t, "360", string(raw["width"]))
}

func TestPipelineMissingNamesFile(t *testing.T) {
	pipeline, err := atlasmap.New(
		atlasmap.WithSources(usaSource()),
		atlasmap.WithNamesFile(filepath.Join(t.TempDir(), "absent.txt")),
		atlasmap.WithOutput(filepath.Join(t.TempDir(), "out.json")),
		atlasmap.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)

	_, err = pipeline.Run()
	require.Error(t, err)
	assert.True(t, errors.IsIO(err))
}

func TestPipelineEmptyNameList(t *testing.T) {
	pipeline, err := atlasmap.New(
		atlasmap.WithSources(usaSource()),
		atlasmap.WithNamesFile(writeNames(t, "\n \n")),
		atlasmap.WithOutput(filepath.Join(t.TempDir(), "out.json")),
		atlasmap.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)

	_, err = pipeline.Run()
	assert.ErrorIs(t, err, errors.ErrNoNames)
}

func TestNewValidation(t *testing.T) {
	_, err := atlasmap.New(
		atlasmap.WithOutput("out.json"),
	)
	assert.Error(t, err, "missing name list must be rejected")

	_, err = atlasmap.New(
		atlasmap.WithNames([]string{"Canada"}),
	)
	assert.Error(t, err, "missing output path must be rejected")

	_, err = atlasmap.New(
		atlasmap.WithGeoJSONSource(atlas.Resolution("ultra-res"), "x.geojson"),
		atlasmap.WithNames([]string{"Canada"}),
		atlasmap.WithOutput("out.json"),
	)
	assert.Error(t, err, "unknown resolution must be rejected")
}
