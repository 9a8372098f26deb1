// Package aggregate builds a unified atlas from independent geometry
// sources. Features are grouped by entity key with one area slot per
// resolution tier; regions that end up with no geometry are pruned.
//
// Nothing in this stage is fatal. A missing or unreadable source
// contributes zero regions, and malformed features are logged and skipped.
package aggregate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cartomesh/atlasmap/pkg/atlas"
	"github.com/cartomesh/atlasmap/pkg/constants"
	"github.com/cartomesh/atlasmap/pkg/logging"
	"github.com/cartomesh/atlasmap/pkg/sources"
)

// Stats describes one aggregation run.
type Stats struct {
	// Entities is the number of regions surviving the prune
	Entities int

	// TierCounts counts regions carrying each tier actually present
	TierCounts map[atlas.Resolution]int

	// Pruned lists entity keys removed for having no geometry
	Pruned []string

	// SkippedSources counts sources that were missing or unreadable
	SkippedSources int

	// SkippedFeatures counts features dropped for a missing key or geometry
	SkippedFeatures int
}

// Aggregator consolidates feature sources into an atlas.
type Aggregator struct {
	logger *zerolog.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithLogger sets the logger used for per-source and per-feature reporting.
func WithLogger(logger *zerolog.Logger) Option {
	return func(ag *Aggregator) {
		ag.logger = logger
	}
}

// New creates an Aggregator.
func New(opts ...Option) *Aggregator {
	ag := &Aggregator{
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(ag)
	}
	return ag
}

// Aggregate processes sources in order and returns a new atlas with one
// composite region per entity key.
//
// The first source to contribute a key sets the region's display name;
// later sources only add or overwrite their own tier's area. Features with
// an empty entity key or blank geometry are skipped. After all sources are
// processed, regions with no areas are pruned.
func (ag *Aggregator) Aggregate(srcs []sources.Source) (*atlas.Atlas, *Stats) {
	out := atlas.New()
	stats := &Stats{
		TierCounts: make(map[atlas.Resolution]int),
	}

	for _, src := range srcs {
		if src == nil {
			stats.SkippedSources++
			continue
		}

		ag.logger.Info().
			Str("layer", src.Name()).
			Str("resolution", src.Resolution().String()).
			Msg("Processing layer")

		features, err := src.Features()
		if err != nil {
			ag.logger.Warn().
				Err(err).
				Str("layer", src.Name()).
				Msg("Layer unavailable, skipping")
			stats.SkippedSources++
			continue
		}

		for _, feature := range features {
			ag.addFeature(out, src, feature, stats)
		}
	}

	ag.prune(out, stats)

	stats.Entities = out.Len()
	for _, region := range out.Regions {
		for res := range region.Areas {
			stats.TierCounts[res]++
		}
	}

	ag.logger.Info().
		Int("entities", stats.Entities).
		Strs("resolutions", tierSummary(stats.TierCounts)).
		Msg("Aggregation complete")

	return out, stats
}

// addFeature folds one feature record into the atlas being built.
func (ag *Aggregator) addFeature(out *atlas.Atlas, src sources.Source, feature sources.Feature, stats *Stats) {
	key := feature.EntityKey
	if key == "" {
		stats.SkippedFeatures++
		return
	}

	if strings.TrimSpace(feature.WKT) == "" {
		ag.logger.Warn().
			Str("entity_key", key).
			Str("display_name", feature.DisplayName).
			Str("layer", src.Name()).
			Msg("No geometry for feature, skipping")
		stats.SkippedFeatures++
		return
	}

	region, ok := out.Regions[key]
	if !ok {
		// First encounter wins the display name; later sources only
		// contribute their tier's area.
		region = atlas.NewRegion(feature.DisplayName)
		out.Regions[key] = region
	}

	region.Areas[src.Resolution()] = atlas.Area{
		AreaWKT: feature.WKT,
		SourceMetadata: atlas.SourceMetadata{
			LayerName:        src.Name(),
			EntityIdentifier: constants.AdminField + "=" + feature.DisplayName,
		},
	}
}

// prune removes regions that collected no geometry from any source.
func (ag *Aggregator) prune(out *atlas.Atlas, stats *Stats) {
	for key, region := range out.Regions {
		if !region.HasAreas() {
			stats.Pruned = append(stats.Pruned, key)
		}
	}
	sort.Strings(stats.Pruned)

	for _, key := range stats.Pruned {
		delete(out.Regions, key)
	}

	if len(stats.Pruned) > 0 {
		ag.logger.Info().
			Int("count", len(stats.Pruned)).
			Strs("entity_keys", stats.Pruned).
			Msg("Removed regions with no valid geometries")
	}
}

// tierSummary renders per-tier entity counts for tiers actually present,
// sorted by name for stable logs.
func tierSummary(counts map[atlas.Resolution]int) []string {
	entries := make([]string, 0, len(counts))
	for res, count := range counts {
		entries = append(entries, fmt.Sprintf("%s=%d", res, count))
	}
	sort.Strings(entries)
	return entries
}
