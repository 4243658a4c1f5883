package main

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/press-cli/press"
)

// progressRenderer adapts press progress events to a terminal bar. The
// bar is created lazily on the first archiving event, once the scan has
// fixed the byte total; rendering is throttled so updates never flood
// the terminal or slow the pipeline.
type progressRenderer struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

func newProgressRenderer(out io.Writer) *progressRenderer {
	return &progressRenderer{out: out}
}

// observe implements press.ProgressFunc.
func (p *progressRenderer) observe(ev press.ProgressEvent) {
	if ev.Stage != press.StageArchiving {
		return
	}
	if p.bar == nil {
		p.bar = progressbar.NewOptions64(int64(ev.BytesTotal),
			progressbar.OptionSetWriter(p.out),
			progressbar.OptionSetDescription("archiving"),
			progressbar.OptionShowBytes(true),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionSetRenderBlankState(true),
			progressbar.OptionClearOnFinish(),
		)
	}
	_ = p.bar.Set64(int64(ev.BytesDone))
}

// done finalizes the bar: fills to 100% on success, or marks the
// failure so a partial bar is not mistaken for a hang.
func (p *progressRenderer) done(err error) {
	if p.bar == nil {
		return
	}
	if err != nil {
		_ = p.bar.Exit()
		fmt.Fprintln(p.out, "failed")
		return
	}
	_ = p.bar.Finish()
}
