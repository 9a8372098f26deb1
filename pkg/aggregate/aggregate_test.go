package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartomesh/atlasmap/pkg/atlas"
	"github.com/cartomesh/atlasmap/pkg/errors"
	"github.com/cartomesh/atlasmap/pkg/logging"
	"github.com/cartomesh/atlasmap/pkg/sources"
)

const polyWKT = "POLYGON((0 0,1 0,1 1,0 0))"

func lowSource(features ...sources.Feature) sources.Source {
	return sources.NewStatic(sources.LowResID, atlas.LowRes.Layer(), atlas.LowRes, features)
}

func mediumSource(features ...sources.Feature) sources.Source {
	return sources.NewStatic(sources.MediumResID, atlas.MediumRes.Layer(), atlas.MediumRes, features)
}

func newAggregator(t *testing.T) *Aggregator {
	t.Helper()
	return New(WithLogger(logging.NewNopLogger()))
}

func TestAggregateGroupsByEntityKey(t *testing.T) {
	ag := newAggregator(t)

	out, stats := ag.Aggregate([]sources.Source{
		lowSource(sources.Feature{DisplayName: "Canada", EntityKey: "CAN", WKT: polyWKT}),
		mediumSource(sources.Feature{DisplayName: "Canada", EntityKey: "CAN", WKT: polyWKT}),
	})

	require.Equal(t, 1, out.Len())
	region := out.Regions["CAN"]
	require.NotNil(t, region)
	assert.Equal(t, "Canada", region.RegionName)
	assert.Len(t, region.Areas, 2)
	assert.Contains(t, region.Areas, atlas.LowRes)
	assert.Contains(t, region.Areas, atlas.MediumRes)

	assert.Equal(t, 1, stats.Entities)
	assert.Equal(t, 1, stats.TierCounts[atlas.LowRes])
	assert.Equal(t, 1, stats.TierCounts[atlas.MediumRes])
}

func TestAggregateFirstSourceWinsDisplayName(t *testing.T) {
	ag := newAggregator(t)

	out, _ := ag.Aggregate([]sources.Source{
		lowSource(sources.Feature{DisplayName: "United States of America", EntityKey: "USA", WKT: polyWKT}),
		mediumSource(sources.Feature{DisplayName: "United States", EntityKey: "USA", WKT: polyWKT}),
	})

	require.Contains(t, out.Regions, "USA")
	assert.Equal(t, "United States of America", out.Regions["USA"].RegionName)
}

func TestAggregateLaterSourceOverwritesSameTier(t *testing.T) {
	ag := newAggregator(t)

	out, _ := ag.Aggregate([]sources.Source{
		lowSource(sources.Feature{DisplayName: "Canada", EntityKey: "CAN", WKT: "POINT(0 0)"}),
		lowSource(sources.Feature{DisplayName: "Canada", EntityKey: "CAN", WKT: polyWKT}),
	})

	require.Contains(t, out.Regions, "CAN")
	require.Len(t, out.Regions["CAN"].Areas, 1)
	assert.Equal(t, polyWKT, out.Regions["CAN"].Areas[atlas.LowRes].AreaWKT)
}

func TestAggregateSkipsFeatureWithoutKey(t *testing.T) {
	ag := newAggregator(t)

	out, stats := ag.Aggregate([]sources.Source{
		lowSource(
			sources.Feature{DisplayName: "Nowhere", EntityKey: "", WKT: polyWKT},
			sources.Feature{DisplayName: "Canada", EntityKey: "CAN", WKT: polyWKT},
		),
	})

	assert.Equal(t, 1, out.Len())
	assert.Equal(t, 1, stats.SkippedFeatures)
}

func TestAggregateSkipsFeatureWithoutGeometry(t *testing.T) {
	ag := newAggregator(t)

	out, stats := ag.Aggregate([]sources.Source{
		lowSource(
			sources.Feature{DisplayName: "Ghost Island", EntityKey: "GHO", WKT: ""},
			sources.Feature{DisplayName: "Blank Island", EntityKey: "BLA", WKT: "   "},
			sources.Feature{DisplayName: "Canada", EntityKey: "CAN", WKT: polyWKT},
		),
	})

	assert.Equal(t, 1, out.Len())
	assert.NotContains(t, out.Regions, "GHO")
	assert.NotContains(t, out.Regions, "BLA")
	assert.Equal(t, 2, stats.SkippedFeatures)
}

func TestAggregateSkipsFailingSource(t *testing.T) {
	ag := newAggregator(t)

	failing := sources.NewFailingStatic(
		sources.HighResID, atlas.HighRes.Layer(), atlas.HighRes,
		errors.NewSourceError("high_res", atlas.HighRes.Layer(), "layer not found", nil),
	)

	out, stats := ag.Aggregate([]sources.Source{
		failing,
		lowSource(sources.Feature{DisplayName: "Canada", EntityKey: "CAN", WKT: polyWKT}),
	})

	assert.Equal(t, 1, out.Len())
	assert.Equal(t, 1, stats.SkippedSources)
	// The failing tier must not appear in the tier summary.
	assert.NotContains(t, stats.TierCounts, atlas.HighRes)
}

func TestAggregateSkipsNilSource(t *testing.T) {
	ag := newAggregator(t)

	out, stats := ag.Aggregate([]sources.Source{nil})
	assert.Equal(t, 0, out.Len())
	assert.Equal(t, 1, stats.SkippedSources)
}

func TestAggregateNoEmptyRegions(t *testing.T) {
	ag := newAggregator(t)

	out, _ := ag.Aggregate([]sources.Source{
		lowSource(
			sources.Feature{DisplayName: "Canada", EntityKey: "CAN", WKT: polyWKT},
			sources.Feature{DisplayName: "Ghost Island", EntityKey: "GHO", WKT: ""},
		),
		mediumSource(
			sources.Feature{DisplayName: "Ghost Island", EntityKey: "GHO", WKT: "\n"},
		),
	})

	for key, region := range out.Regions {
		assert.True(t, region.HasAreas(), "region %s has no areas", key)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	ag := newAggregator(t)

	out, stats := ag.Aggregate(nil)
	assert.Equal(t, 0, out.Len())
	assert.Equal(t, 0, stats.Entities)
	assert.Empty(t, stats.Pruned)
}

func TestAggregateProvenance(t *testing.T) {
	ag := newAggregator(t)

	out, _ := ag.Aggregate([]sources.Source{
		lowSource(sources.Feature{DisplayName: "Canada", EntityKey: "CAN", WKT: polyWKT}),
	})

	area := out.Regions["CAN"].Areas[atlas.LowRes]
	assert.Equal(t, atlas.LowRes.Layer(), area.SourceMetadata.LayerName)
	assert.Equal(t, "ADMIN=Canada", area.SourceMetadata.EntityIdentifier)
}
