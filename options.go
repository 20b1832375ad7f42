package udfc

// ControllerOption configures a Controller during creation.
//
// Example:
//
//	c := udfc.NewController(udfc.WithProgress(func(p udfc.Progress) {
//	    fmt.Printf("\r%3d%%", p.Percent)
//	}))
type ControllerOption func(*controllerOptions)

// controllerOptions holds optional configuration for Controller creation.
type controllerOptions struct {
	progress ProgressFunc
	source   GlyphSource
	config   RenderConfig
}

// defaultControllerOptions returns the default controller options.
func defaultControllerOptions() controllerOptions {
	return controllerOptions{config: DefaultRenderConfig()}
}

// WithProgress registers a callback invoked after every written character.
// The callback runs on the worker goroutine and must not block.
func WithProgress(fn ProgressFunc) ControllerOption {
	return func(o *controllerOptions) {
		o.progress = fn
	}
}

// WithSource sets the initial glyph source and render configuration.
// An invalid cfg is replaced by DefaultRenderConfig.
func WithSource(src GlyphSource, cfg RenderConfig) ControllerOption {
	return func(o *controllerOptions) {
		o.source = src
		if cfg.Validate() == nil {
			o.config = cfg
		}
	}
}
