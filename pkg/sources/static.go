package sources

import "github.com/cartomesh/atlasmap/pkg/atlas"

// Static is an in-memory feature source. It backs tests and any caller that
// already holds feature records.
type Static struct {
	id         ID
	name       string
	resolution atlas.Resolution
	features   []Feature
	err        error
}

// Compile-time interface check to ensure proper implementation.
var _ Source = (*Static)(nil)

// NewStatic creates an in-memory source for the given layer and tier.
func NewStatic(id ID, name string, res atlas.Resolution, features []Feature) *Static {
	return &Static{
		id:         id,
		name:       name,
		resolution: res,
		features:   features,
	}
}

// NewFailingStatic creates a source whose Features call always fails,
// simulating a missing or invalid layer.
func NewFailingStatic(id ID, name string, res atlas.Resolution, err error) *Static {
	return &Static{
		id:         id,
		name:       name,
		resolution: res,
		err:        err,
	}
}

// ID returns the source identifier.
func (s *Static) ID() ID {
	return s.id
}

// Name returns the layer name.
func (s *Static) Name() string {
	return s.name
}

// Resolution returns the tier this source contributes to.
func (s *Static) Resolution() atlas.Resolution {
	return s.resolution
}

// Features returns the configured feature records.
func (s *Static) Features() ([]Feature, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]Feature, len(s.features))
	copy(out, s.features)
	return out, nil
}
