package standard

const (
	_defaultPrecision = 3
	_maxPrecision     = 10
	_defaultMaskID    = "transparent-circle"
)

// ImageOption configures how a clock is turned into SVG markup.
type ImageOption interface {
	apply(oo *outputImageOptions)
}

type outputImageOptions struct {
	// precision is the number of decimals kept in coordinates.
	precision int
	// maskID is the id of the mask punching the hole in ring mode.
	maskID string
}

func defaultOutputImageOption() *outputImageOptions {
	return &outputImageOptions{
		precision: _defaultPrecision,
		maskID:    _defaultMaskID,
	}
}

func newOutputImageOption(opts ...ImageOption) *outputImageOptions {
	oo := defaultOutputImageOption()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.apply(oo)
	}
	return oo
}

// funcOption wraps a function that modifies outputImageOptions into an
// implementation of the ImageOption interface.
type funcOption struct {
	f func(oo *outputImageOptions)
}

func (fo *funcOption) apply(oo *outputImageOptions) {
	fo.f(oo)
}

func newFuncOption(f func(oo *outputImageOptions)) *funcOption {
	return &funcOption{
		f: f,
	}
}

// WithPrecision sets how many decimals are kept in coordinates, trailing
// zeros are always dropped. Values outside [0, 10] are ignored.
func WithPrecision(decimals int) ImageOption {
	return newFuncOption(func(oo *outputImageOptions) {
		if decimals < 0 || decimals > _maxPrecision {
			return
		}

		oo.precision = decimals
	})
}

// WithMaskID names the mask used in ring mode.
func WithMaskID(id string) ImageOption {
	return newFuncOption(func(oo *outputImageOptions) {
		if id == "" {
			return
		}

		oo.maskID = id
	})
}
