package hdmr

// Init selects the component-function initialization policy.
type Init string

const (
	// InitNaive seeds every component cell with mean(y)/M so the
	// component row-sum reproduces the target mean at cycle zero.
	InitNaive Init = "naive"

	// InitPoly seeds each component with a degree-3 polynomial fit of the
	// target on the combination's first feature dimension.
	InitPoly Init = "poly"
)

// Option is a function that configures a Fitter.
type Option func(*Fitter)

// WithAlpha sets the base regression noise level added to the kernel
// diagonal during fitting.
func WithAlpha(alpha float64) Option {
	return func(f *Fitter) {
		f.alpha = alpha
	}
}

// WithAlphaDecay enables the three-regime noise schedule: the base level
// for the first two cycles, one decade lower from cycle 2 onward.
func WithAlphaDecay(decay bool) Option {
	return func(f *Fitter) {
		f.decayAlpha = decay
	}
}

// WithScaleFactor sets the multiplier applied to targets and predictions
// at reporting time, typically the original target range.
func WithScaleFactor(scale float64) Option {
	return func(f *Fitter) {
		f.scaleFactor = scale
	}
}

// WithLengthScale sets the RBF kernel length-scale.
func WithLengthScale(l float64) Option {
	return func(f *Fitter) {
		f.lengthScale = l
	}
}

// WithCycles sets the number of refinement passes over all component
// functions.
func WithCycles(cycles int) Option {
	return func(f *Fitter) {
		f.cycles = cycles
	}
}

// WithInit selects the component initialization policy.
func WithInit(init Init) Option {
	return func(f *Fitter) {
		f.init = init
	}
}

// WithMixing blends each freshly fitted component with its pre-fit residual
// instead of replacing it outright.
func WithMixing(mixing bool) Option {
	return func(f *Fitter) {
		f.mixing = mixing
	}
}

// WithOptimizer names the kernel hyperparameter optimizer passed to the
// underlying regressors; an empty string keeps the kernel fixed.
func WithOptimizer(name string) Option {
	return func(f *Fitter) {
		f.optimizer = name
	}
}

// WithRegressorFactory replaces the regressor construction used by the
// fitter. The default factory builds a gpr.GPR with the configured kernel;
// tests inject deterministic stubs here.
func WithRegressorFactory(factory RegressorFactory) Option {
	return func(f *Fitter) {
		f.factory = factory
	}
}
