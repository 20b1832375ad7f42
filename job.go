package udfc

import (
	"context"
	"fmt"
	"iter"
	"math"
	"sync/atomic"
	"time"

	"github.com/gogpu/udfc/pk3"
)

// SelectionMode chooses how a job enumerates characters.
type SelectionMode int

const (
	// ExplicitRange selects [Begin, End].
	ExplicitRange SelectionMode = iota

	// CoverageMode selects the union of Selection.Coverage.
	CoverageMode
)

// String returns the mode name.
func (m SelectionMode) String() string {
	switch m {
	case ExplicitRange:
		return "range"
	case CoverageMode:
		return "coverage"
	default:
		return fmt.Sprintf("SelectionMode(%d)", int(m))
	}
}

// Selection is the set of characters a job renders.
type Selection struct {
	Mode     SelectionMode
	Begin    rune
	End      rune
	Coverage CoverageSet
}

// RangeSelection selects the inclusive range [begin, end].
func RangeSelection(begin, end rune) Selection {
	return Selection{Mode: ExplicitRange, Begin: begin, End: end}
}

// CoverageSelection selects the union of ranges.
func CoverageSelection(ranges ...CharacterRange) Selection {
	return Selection{Mode: CoverageMode, Coverage: CoverageSet(ranges)}
}

// DefaultSelection is the printable ASCII range, space to DEL.
func DefaultSelection() Selection { return RangeSelection(32, 127) }

// validate rejects code points that cannot be named in an archive.
// A reversed explicit range is not an error; it selects nothing.
func (s Selection) validate() error {
	switch s.Mode {
	case ExplicitRange:
		for _, c := range []rune{s.Begin, s.End} {
			if c < 0 || c > MaxCodePoint {
				return &ConfigError{Field: "character", Value: fmt.Sprintf("%U", c), Reason: "must be in U+0000..U+FFFF"}
			}
		}
		return nil
	case CoverageMode:
		return s.Coverage.validate()
	}
	return &ConfigError{Field: "selection mode", Value: int(s.Mode), Reason: "unknown mode"}
}

// Count returns the number of characters the selection yields.
func (s Selection) Count() int {
	if s.Mode == CoverageMode {
		return s.Coverage.Count()
	}
	return CharacterRange{s.Begin, s.End}.Len()
}

// All yields the selected characters in ascending order.
func (s Selection) All() iter.Seq[rune] {
	if s.Mode == CoverageMode {
		return s.Coverage.All()
	}
	return CoverageSet{{s.Begin, s.End}}.All()
}

// Outcome is the terminal state of a job.
type Outcome int

const (
	// Success means every selected character was written.
	Success Outcome = iota

	// EmptyJob means the selection was empty. The archive holds only the
	// directory skeleton.
	EmptyJob

	// Terminated means a stop was requested. The archive holds the
	// characters finished before the request was seen.
	Terminated

	// Failed means an archive or render error ended the job. The archive
	// should be discarded.
	Failed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case EmptyJob:
		return "empty job"
	case Terminated:
		return "terminated"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Job describes one archive build.
type Job struct {
	Source    GlyphSource
	Config    RenderConfig
	Format    FontFormat
	Output    string
	Selection Selection
}

// Result reports how a job ended.
type Result struct {
	Outcome Outcome

	// Path is the archive written, with its extension normalized.
	Path string

	// Written is the number of glyph entries in the archive.
	Written int

	// Total is the number of selected characters.
	Total int

	// Err is set for Failed jobs and for jobs rejected by validation.
	Err error

	Elapsed time.Duration
}

// Progress is reported after every written character.
type Progress struct {
	Done    int
	Total   int
	Percent int
}

// ProgressFunc observes job progress. It runs on the job goroutine.
type ProgressFunc func(Progress)

// RunJob builds the archive described by job. Canceling ctx stops the
// job before the next character, and the result is Terminated.
//
// Configuration errors are returned before any file is touched. Archive
// and render errors end the job with a Failed result; the error is also
// returned.
func RunJob(ctx context.Context, job Job, progress ProgressFunc) (Result, error) {
	return runJob(ctx, job, nil, progress)
}

// runJob is RunJob with an extra stop flag, checked alongside ctx.
func runJob(ctx context.Context, job Job, stop *atomic.Bool, progress ProgressFunc) (res Result, err error) {
	start := time.Now()
	log := Logger()

	dir, err := job.Format.DirName()
	if err != nil {
		return Result{Outcome: Failed, Err: err}, err
	}
	if job.Source == nil {
		return Result{Outcome: Failed, Err: ErrNoGlyphSource}, ErrNoGlyphSource
	}
	if err := job.Config.Validate(); err != nil {
		return Result{Outcome: Failed, Err: err}, err
	}
	if err := job.Selection.validate(); err != nil {
		return Result{Outcome: Failed, Err: err}, err
	}

	stopped := func() bool {
		return (stop != nil && stop.Load()) || ctx.Err() != nil
	}

	w, err := pk3.Create(job.Output, dir)
	if err != nil {
		log.Error("archive create failed", "path", job.Output, "err", err)
		return Result{Outcome: Failed, Err: err}, err
	}
	res.Path = w.Path()
	res.Total = job.Selection.Count()
	log.Info("job started",
		"path", res.Path,
		"format", job.Format,
		"mode", job.Selection.Mode,
		"characters", res.Total)

	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			log.Error("archive close failed", "path", res.Path, "err", cerr)
			err = cerr
			res.Outcome = Failed
			res.Err = cerr
		}
		res.Elapsed = time.Since(start)
		log.Info("job finished",
			"path", res.Path,
			"outcome", res.Outcome,
			"written", res.Written,
			"elapsed", res.Elapsed)
	}()

	terminated := false
	for r := range job.Selection.All() {
		if stopped() {
			terminated = true
			break
		}
		img, rerr := Render(job.Source, r, job.Config)
		if rerr != nil {
			log.Error("render failed", "rune", fmt.Sprintf("%U", r), "err", rerr)
			res.Outcome, res.Err = Failed, rerr
			return res, rerr
		}
		if werr := w.WritePNG(r, img.Image()); werr != nil {
			log.Error("archive write failed", "path", res.Path, "err", werr)
			res.Outcome, res.Err = Failed, werr
			return res, werr
		}
		res.Written++
		if progress != nil {
			progress(Progress{
				Done:    res.Written,
				Total:   res.Total,
				Percent: percent(res.Written, res.Total),
			})
		}
	}

	switch {
	case terminated || stopped():
		res.Outcome = Terminated
	case res.Total == 0:
		res.Outcome = EmptyJob
	default:
		res.Outcome = Success
	}
	return res, nil
}

// percent returns round(100*done/total).
func percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}
