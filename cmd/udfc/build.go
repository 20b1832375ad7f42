package main

import (
	"context"
	"fmt"
	"os"

	"github.com/muesli/reflow/padding"
	"golang.org/x/term"

	"github.com/gogpu/udfc"
)

// build runs one job on a Controller. Canceling ctx (SIGINT) asks the job
// to stop; the partial archive is kept.
func build(ctx context.Context, src udfc.GlyphSource, cfg udfc.RenderConfig, format udfc.FontFormat, sel udfc.Selection, output string) (udfc.Result, error) {
	progress := func(udfc.Progress) {}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		width := uint(terminalWidth(defaultWidth))
		progress = func(p udfc.Progress) {
			line := fmt.Sprintf("%3d%% %d/%d", p.Percent, p.Done, p.Total)
			fmt.Fprint(os.Stderr, "\r"+padding.String(line, width-1))
		}
		defer fmt.Fprintln(os.Stderr)
	}

	c := udfc.NewController(udfc.WithSource(src, cfg), udfc.WithProgress(progress))

	workerCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = c.Run(workerCtx) }()

	if err := c.Start(sel, format, output); err != nil {
		return udfc.Result{}, err
	}

	select {
	case res := <-c.Results():
		return res, res.Err
	case <-ctx.Done():
		c.Stop()
	}
	res := <-c.Results()
	return res, res.Err
}
