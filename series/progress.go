// SPDX-License-Identifier: MIT

package series

import (
	"log/slog"
	"sync"

	"github.com/katalvlaran/orgindex/orgmetrics"
)

// progress counts completed slices and fires the sink every `every` of them.
type progress struct {
	mu    sync.Mutex
	fn    ProgressFunc
	every int
	done  int
}

func newProgress(opts Options, total int) *progress {
	return &progress{fn: opts.Progress, every: opts.progressEvery(total)}
}

func (p *progress) observe(r orgmetrics.Result) {
	if p.fn == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	if p.done%p.every == 0 {
		p.fn(p.done, r)
	}
}

// LogProgress returns a ProgressFunc that logs each report at info level.
func LogProgress(logger *slog.Logger) ProgressFunc {
	logger = logger.With("component", "series")
	return func(done int, r orgmetrics.Result) {
		logger.Info("slices computed",
			"done", done,
			"scai", r.SCAI,
			"mcai", r.MCAI,
			"cop", r.COP,
			"iorg", r.Iorg,
			"abcop", r.ABCOP,
			"n", r.N,
			"mean_size", r.MeanSize,
		)
	}
}
