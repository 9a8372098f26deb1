// Package atlasmap unifies multi-resolution administrative-boundary
// geometry into a single deterministic atlas artifact.
//
// The pipeline has three stages:
//
//  1. Aggregation: feature records from independent geometry sources are
//     grouped by 3-letter entity key into composite regions, one geometry
//     area per resolution tier.
//  2. Matching: an ordered list of territory names is reconciled against
//     the aggregate; unresolved names become UUID-keyed placeholder
//     regions with empty geometry.
//  3. Serialization: the result is written with deterministic key order —
//     entity keys first, synthetic IDs after, lexicographic within each
//     group.
//
// Example usage:
//
//	pipeline, err := atlasmap.New(
//	    atlasmap.WithGeoJSONSource(atlas.LowRes, "ne_110m.geojson"),
//	    atlasmap.WithNamesFile("territories.txt"),
//	    atlasmap.WithOutput("matched_territories.json"),
//	)
//	if err != nil {
//	    return err
//	}
//	result, err := pipeline.Run()
package atlasmap

import (
	"github.com/cartomesh/atlasmap/pkg/aggregate"
	"github.com/cartomesh/atlasmap/pkg/match"
)

// Result summarizes one pipeline run.
type Result struct {
	// Aggregated is the number of entities surviving aggregation
	Aggregated int

	// Matched, Unmatched, and Skipped are the matcher's counts
	Matched   int
	Unmatched int
	Skipped   int

	// Regions is the number of regions in the final atlas
	Regions int

	// OutputPath is where the final atlas was written
	OutputPath string

	// AggregateStats and MatchStats carry the full per-stage detail
	AggregateStats *aggregate.Stats
	MatchStats     *match.Stats
}
