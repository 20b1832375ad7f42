package udfc

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// State is the controller state.
type State int32

const (
	// Idle means no job is running and configuration may change.
	Idle State = iota

	// Running means a job is in flight.
	Running
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Controller runs archive jobs one at a time on a single worker goroutine.
//
// Start hands a job to the worker started by Run; it never spawns a
// goroutine of its own. While a job runs, Configure and SetPalette are
// rejected with ErrBusy, Stop requests cooperative termination and
// Progress reports the completion percentage.
//
// Controller is safe for concurrent use.
type Controller struct {
	start   chan Job
	results chan Result

	state    atomic.Int32
	stop     atomic.Bool
	progress atomic.Int32

	onProgress ProgressFunc

	mu  sync.Mutex
	src GlyphSource
	cfg RenderConfig
}

// NewController creates an idle controller. Call Run to start its worker.
func NewController(opts ...ControllerOption) *Controller {
	o := defaultControllerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller{
		start:      make(chan Job, 1),
		results:    make(chan Result, 1),
		onProgress: o.progress,
		src:        o.source,
		cfg:        o.config,
	}
}

// Run is the worker loop. It waits for jobs handed over by Start and runs
// them until ctx is done. Canceling ctx also terminates the running job.
// Run must be called at most once.
func (c *Controller) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case job := <-c.start:
			res, _ := runJob(ctx, job, &c.stop, c.report)
			c.progress.Store(0)
			c.state.Store(int32(Idle))
			c.stop.Store(false)
			c.publish(res)
		}
	}
}

// Start validates the request and hands a job to the worker. It returns
// ErrBusy while another job runs, and a *ConfigError (or ErrNoGlyphSource)
// for an invalid request. The job runs on the current source and
// configuration.
func (c *Controller) Start(sel Selection, format FontFormat, output string) error {
	if _, err := format.DirName(); err != nil {
		return err
	}
	if err := sel.validate(); err != nil {
		return err
	}

	c.mu.Lock()
	job := Job{Source: c.src, Config: c.cfg, Format: format, Output: output, Selection: sel}
	c.mu.Unlock()
	if job.Source == nil {
		return ErrNoGlyphSource
	}

	if !c.state.CompareAndSwap(int32(Idle), int32(Running)) {
		Logger().Warn("start rejected, job in progress", "output", output)
		return ErrBusy
	}
	c.stop.Store(false)
	c.progress.Store(0)
	// The buffer holds one job and only an Idle to Running transition
	// sends, so this never blocks.
	c.start <- job
	return nil
}

// Stop asks the running job to finish after the current character.
// It reports whether a job was running.
func (c *Controller) Stop() bool {
	if c.State() != Running {
		Logger().Warn("stop ignored, no job running")
		return false
	}
	c.stop.Store(true)
	return true
}

// State returns the controller state.
func (c *Controller) State() State { return State(c.state.Load()) }

// Progress returns the completion percentage of the running job, 0..100.
func (c *Controller) Progress() int { return int(c.progress.Load()) }

// Results delivers one Result per finished job. Only the latest result is
// kept when nobody reads.
func (c *Controller) Results() <-chan Result { return c.results }

// Configure replaces the glyph source and render configuration.
func (c *Controller) Configure(src GlyphSource, cfg RenderConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if c.State() == Running {
		return ErrBusy
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.src = src
	c.cfg = cfg
	return nil
}

// SetPalette sets the palette of the render configuration. A nil p
// disables quantization.
func (c *Controller) SetPalette(p *Palette) error {
	if c.State() == Running {
		return ErrBusy
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.Palette = p
	return nil
}

// Config returns the current render configuration.
func (c *Controller) Config() RenderConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

// Preview composes s with the current source and configuration. It may
// be called while a job runs.
func (c *Controller) Preview(s string) (*Raster, error) {
	c.mu.Lock()
	src, cfg := c.src, c.cfg
	c.mu.Unlock()
	if src == nil {
		return nil, ErrNoGlyphSource
	}
	return Preview(src, s, cfg)
}

func (c *Controller) report(p Progress) {
	c.progress.Store(int32(p.Percent))
	if c.onProgress != nil {
		c.onProgress(p)
	}
}

// publish delivers res, replacing an unread older result.
func (c *Controller) publish(res Result) {
	for {
		select {
		case c.results <- res:
			return
		default:
		}
		select {
		case <-c.results:
		default:
		}
	}
}
