package atlasmap

import (
	"github.com/rs/zerolog"

	"github.com/cartomesh/atlasmap/pkg/aggregate"
	"github.com/cartomesh/atlasmap/pkg/atlas"
	"github.com/cartomesh/atlasmap/pkg/errors"
	"github.com/cartomesh/atlasmap/pkg/logging"
	"github.com/cartomesh/atlasmap/pkg/match"
	"github.com/cartomesh/atlasmap/pkg/namelist"
	"github.com/cartomesh/atlasmap/pkg/sources"
)

// Pipeline runs the aggregate → match → serialize flow end to end.
// All paths and collaborators are explicit; the pipeline never reads
// ambient defaults.
type Pipeline struct {
	sources       []sources.Source
	names         []string
	namesPath     string
	outputPath    string
	aggregatePath string
	format        atlas.Format
	idGenerator   match.IDGenerator
	logger        *zerolog.Logger
}

// New creates a Pipeline from the given options.
func New(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		idGenerator: match.RandomID,
		logger:      logging.Default(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	if p.names == nil && p.namesPath == "" {
		return nil, errors.NewConfigError("pipeline", "no territory name list configured", nil)
	}
	if p.outputPath == "" {
		return nil, errors.NewConfigError("pipeline", "no output path configured", nil)
	}
	return p, nil
}

// Run executes the pipeline. Failures inside aggregation and matching are
// absorbed and reported through stats; only I/O failures (name list read,
// atlas write) or an empty name list abort the run.
func (p *Pipeline) Run() (*Result, error) {
	names := p.names
	if names == nil {
		loaded, err := namelist.Load(p.namesPath)
		if err != nil {
			return nil, err
		}
		names = loaded
	}
	if len(names) == 0 {
		return nil, errors.ErrNoNames
	}
	p.logger.Info().Int("count", len(names)).Msg("Loaded territory names")

	aggregator := aggregate.New(aggregate.WithLogger(p.logger))
	aggregated, aggStats := aggregator.Aggregate(p.sources)

	if p.aggregatePath != "" {
		if err := p.save(aggregated, p.aggregatePath); err != nil {
			return nil, err
		}
	}

	matcher := match.New(
		match.WithIDGenerator(p.idGenerator),
		match.WithLogger(p.logger),
	)
	matched, matchStats, err := matcher.Match(aggregated, names)
	if err != nil {
		return nil, err
	}

	if err := p.save(matched, p.outputPath); err != nil {
		return nil, err
	}

	return &Result{
		Aggregated:     aggStats.Entities,
		Matched:        matchStats.Matched,
		Unmatched:      matchStats.Unmatched,
		Skipped:        matchStats.Skipped,
		Regions:        matched.Len(),
		OutputPath:     p.outputPath,
		AggregateStats: aggStats,
		MatchStats:     matchStats,
	}, nil
}

// save writes an atlas, honoring a forced format when one was configured.
func (p *Pipeline) save(a *atlas.Atlas, path string) error {
	if p.format != "" {
		return a.Save(path, atlas.WithFormat(p.format))
	}
	return a.Save(path)
}
