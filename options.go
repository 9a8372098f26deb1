package atlasmap

import (
	"github.com/rs/zerolog"

	"github.com/cartomesh/atlasmap/pkg/atlas"
	"github.com/cartomesh/atlasmap/pkg/errors"
	"github.com/cartomesh/atlasmap/pkg/match"
	"github.com/cartomesh/atlasmap/pkg/sources"
	"github.com/cartomesh/atlasmap/pkg/sources/geojson"
)

// Option is a function that configures a Pipeline.
type Option func(*Pipeline) error

// WithSources appends feature sources in processing order.
func WithSources(srcs ...sources.Source) Option {
	return func(p *Pipeline) error {
		p.sources = append(p.sources, srcs...)
		return nil
	}
}

// WithGeoJSONSource appends a file-backed source feeding the given tier
// from a GeoJSON file, using the tier's canonical layer name.
func WithGeoJSONSource(res atlas.Resolution, path string) Option {
	return func(p *Pipeline) error {
		if !res.IsValid() {
			return errors.NewValidationError("resolution", res, "unknown resolution tier")
		}
		if path == "" {
			return errors.NewValidationError("path", path, "geojson path cannot be empty")
		}
		p.sources = append(p.sources, geojson.New(sources.LayerFor(res), path))
		return nil
	}
}

// WithNames supplies territory names directly, bypassing the name-list file.
func WithNames(names []string) Option {
	return func(p *Pipeline) error {
		p.names = names
		return nil
	}
}

// WithNamesFile sets the newline-delimited territory name list to read.
func WithNamesFile(path string) Option {
	return func(p *Pipeline) error {
		p.namesPath = path
		return nil
	}
}

// WithOutput sets the final atlas output path.
func WithOutput(path string) Option {
	return func(p *Pipeline) error {
		p.outputPath = path
		return nil
	}
}

// WithAggregateOutput also persists the stage-one aggregate to path.
func WithAggregateOutput(path string) Option {
	return func(p *Pipeline) error {
		p.aggregatePath = path
		return nil
	}
}

// WithFormat forces the output format instead of inferring it from the
// output file extension.
func WithFormat(format atlas.Format) Option {
	return func(p *Pipeline) error {
		p.format = format
		return nil
	}
}

// WithIDGenerator sets the synthetic ID generator used for unmatched names.
func WithIDGenerator(gen match.IDGenerator) Option {
	return func(p *Pipeline) error {
		p.idGenerator = gen
		return nil
	}
}

// WithLogger sets the logger used by all pipeline stages.
func WithLogger(logger *zerolog.Logger) Option {
	return func(p *Pipeline) error {
		p.logger = logger
		return nil
	}
}
