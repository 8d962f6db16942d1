package vgmesh

// Option configures a Tessellator, MeshBuilder or Cache during creation.
// Options that do not apply to the constructed type are ignored.
//
// Example:
//
//	tess := vgmesh.NewTessellator(vgmesh.WithDevicePixelRatio(2))
//	cache := vgmesh.NewCache(vgmesh.WithCapacity(256))
type Option func(*options)

// options holds the optional configuration shared by the constructors.
type options struct {
	tol           Tolerances
	capacity      int
	initialPoints int
}

// DefaultCacheCapacity is the number of paths a Cache keeps by default.
const DefaultCacheCapacity = 64

func defaultOptions() options {
	return options{
		tol:           DefaultTolerances(),
		capacity:      DefaultCacheCapacity,
		initialPoints: 128,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithTolerances sets explicit tolerances. Zero fields keep the default.
func WithTolerances(tol Tolerances) Option {
	return func(o *options) {
		if tol.Tess > 0 {
			o.tol.Tess = tol.Tess
		}
		if tol.Dist > 0 {
			o.tol.Dist = tol.Dist
		}
		if tol.Fringe > 0 {
			o.tol.Fringe = tol.Fringe
		}
	}
}

// WithDevicePixelRatio derives all tolerances from a device pixel ratio.
func WithDevicePixelRatio(dpr float32) Option {
	return func(o *options) {
		o.tol = TolerancesForDPR(dpr)
	}
}

// WithCapacity sets how many paths a Cache keeps before evicting the least
// recently used one. Zero or negative means unlimited.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithInitialCapacity preallocates point and vertex buffers for about n
// points.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.initialPoints = n
		}
	}
}
