package layout

// Default spacing and thresholds, in abstract layout units.
const (
	// DefaultLayerSpacing is the horizontal distance between hierarchical layers.
	DefaultLayerSpacing = 300.0

	// DefaultNodeSpacing is the vertical distance between nodes in one layer.
	DefaultNodeSpacing = 120.0

	// DefaultGridSpacingX is the horizontal distance between grid columns.
	DefaultGridSpacingX = 250.0

	// DefaultGridSpacingY is the vertical distance between grid rows.
	DefaultGridSpacingY = 150.0

	// DefaultAnimationThreshold is the largest node count with animated edges.
	DefaultAnimationThreshold = 50
)

// Options configures spacing and edge animation. Zero fields take the
// package defaults; see SetDefaults.
type Options struct {
	LayerSpacing       float64 `json:"layer_spacing,omitempty" toml:"layer_spacing"`
	NodeSpacing        float64 `json:"node_spacing,omitempty" toml:"node_spacing"`
	GridSpacingX       float64 `json:"grid_spacing_x,omitempty" toml:"grid_spacing_x"`
	GridSpacingY       float64 `json:"grid_spacing_y,omitempty" toml:"grid_spacing_y"`
	AnimationThreshold int     `json:"animation_threshold,omitempty" toml:"animation_threshold"`
}

// DefaultOptions returns Options with every field set to its default.
func DefaultOptions() Options {
	var o Options
	o.SetDefaults()
	return o
}

// SetDefaults fills zero fields with the package defaults.
func (o *Options) SetDefaults() {
	if o.LayerSpacing == 0 {
		o.LayerSpacing = DefaultLayerSpacing
	}
	if o.NodeSpacing == 0 {
		o.NodeSpacing = DefaultNodeSpacing
	}
	if o.GridSpacingX == 0 {
		o.GridSpacingX = DefaultGridSpacingX
	}
	if o.GridSpacingY == 0 {
		o.GridSpacingY = DefaultGridSpacingY
	}
	if o.AnimationThreshold == 0 {
		o.AnimationThreshold = DefaultAnimationThreshold
	}
}
