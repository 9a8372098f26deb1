// Package match reconciles an ordered list of territory names against an
// aggregated atlas. Names that resolve to a region carry that region's
// entity key and valid geometry forward; unresolved names become
// placeholder regions keyed by a generated UUID with empty geometry at
// every tier.
package match

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"

	"github.com/cartomesh/atlasmap/pkg/atlas"
	"github.com/cartomesh/atlasmap/pkg/constants"
	"github.com/cartomesh/atlasmap/pkg/errors"
	"github.com/cartomesh/atlasmap/pkg/logging"
)

// IDGenerator produces a synthetic region ID for an unmatched name.
// Injected so deterministic tests can substitute fixed IDs.
type IDGenerator func() string

// RandomID is the default IDGenerator, returning a UUID-v4 string.
// Generated IDs are never 3 characters long, so they remain structurally
// distinguishable from entity keys.
func RandomID() string {
	return uuid.NewString()
}

// Stats describes one matching run.
type Stats struct {
	// Matched counts names resolved to a region with valid geometry
	Matched int

	// Unmatched counts names that received a placeholder region
	Unmatched int

	// Skipped counts names that resolved to a region whose areas all had
	// blank geometry and were therefore dropped
	Skipped int
}

// Matcher reconciles territory names against an atlas.
type Matcher struct {
	generateID IDGenerator
	logger     *zerolog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithIDGenerator sets the synthetic ID generator for unmatched names.
func WithIDGenerator(gen IDGenerator) Option {
	return func(m *Matcher) {
		m.generateID = gen
	}
}

// WithLogger sets the logger used for per-name reporting.
func WithLogger(logger *zerolog.Logger) Option {
	return func(m *Matcher) {
		m.logger = logger
	}
}

// New creates a Matcher.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		generateID: RandomID,
		logger:     logging.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// lookupEntry pairs a region with the key it was aggregated under.
type lookupEntry struct {
	key    string
	region *atlas.Region
}

// Match processes names in input order against the source atlas and returns
// a new atlas; the input is never mutated. An empty name list is a
// recoverable error for the caller to act on.
//
// Comparison is case-folded and whitespace-trimmed; the original name
// string is preserved for placeholder regions and logs. When two regions
// share a folded display name, the lookup keeps the one whose key sorts
// last — a documented data-quality edge case, not an error.
func (m *Matcher) Match(source *atlas.Atlas, names []string) (*atlas.Atlas, *Stats, error) {
	if len(names) == 0 {
		return nil, nil, errors.ErrNoNames
	}

	lookup := m.buildLookup(source)

	out := atlas.New()
	stats := &Stats{}

	folder := cases.Fold()
	for _, name := range names {
		folded := folder.String(strings.TrimSpace(name))

		entry, ok := lookup[folded]
		if !ok {
			id := m.generateID()
			out.Regions[id] = placeholder(name)
			stats.Unmatched++
			m.logger.Debug().
				Str("name", name).
				Str("id", id).
				Msg("No match")
			continue
		}

		region := copyValidAreas(entry.region)
		if !region.HasAreas() {
			stats.Skipped++
			m.logger.Debug().
				Str("name", name).
				Str("entity_key", entry.key).
				Msg("Skipped, no valid geometries")
			continue
		}

		out.Regions[entry.key] = region
		stats.Matched++
		m.logger.Debug().
			Str("name", name).
			Str("entity_key", entry.key).
			Msg("Matched")
	}

	m.logger.Info().
		Int("matched", stats.Matched).
		Int("unmatched", stats.Unmatched).
		Int("skipped", stats.Skipped).
		Msg("Matching complete")

	return out, stats, nil
}

// buildLookup indexes regions by folded, trimmed display name. Iterating
// keys in canonical order pins the duplicate-name winner across runs.
func (m *Matcher) buildLookup(source *atlas.Atlas) map[string]lookupEntry {
	folder := cases.Fold()
	lookup := make(map[string]lookupEntry, source.Len())
	for _, key := range source.Keys() {
		region := source.Regions[key]
		folded := folder.String(strings.TrimSpace(region.RegionName))
		if folded == "" {
			continue
		}
		lookup[folded] = lookupEntry{key: key, region: region}
	}
	return lookup
}

// copyValidAreas builds a new region keeping only areas with non-blank
// geometry. The matched region itself is left untouched.
func copyValidAreas(source *atlas.Region) *atlas.Region {
	out := atlas.NewRegion(source.RegionName)
	for res, area := range source.Areas {
		if area.HasGeometry() {
			out.Areas[res] = area
		}
	}
	return out
}

// placeholder fabricates a region for a name with no geometric match:
// empty geometry at every tier, provenance pointing at the canonical layer
// with an empty entity descriptor.
func placeholder(name string) *atlas.Region {
	out := atlas.NewRegion(name)
	for _, res := range atlas.Resolutions() {
		out.Areas[res] = atlas.Area{
			AreaWKT: "",
			SourceMetadata: atlas.SourceMetadata{
				LayerName:        res.Layer(),
				EntityIdentifier: constants.AdminField + "=",
			},
		}
	}
	return out
}
