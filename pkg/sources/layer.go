package sources

import "github.com/cartomesh/atlasmap/pkg/atlas"

// Layer pairs a source layer name with the resolution tier it feeds.
type Layer struct {
	ID         ID
	Name       string
	Resolution atlas.Resolution
}

// DefaultLayers returns the canonical Natural Earth layer configuration in
// processing order, coarsest first.
func DefaultLayers() []Layer {
	return []Layer{
		{ID: LowResID, Name: atlas.LowRes.Layer(), Resolution: atlas.LowRes},
		{ID: MediumResID, Name: atlas.MediumRes.Layer(), Resolution: atlas.MediumRes},
		{ID: HighResID, Name: atlas.HighRes.Layer(), Resolution: atlas.HighRes},
	}
}

// LayerFor returns the canonical layer for a resolution tier.
func LayerFor(res atlas.Resolution) Layer {
	for _, layer := range DefaultLayers() {
		if layer.Resolution == res {
			return layer
		}
	}
	return Layer{}
}
