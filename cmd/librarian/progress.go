package main

import (
	"github.com/vbauerster/mpb/v4"
	"github.com/vbauerster/mpb/v4/decor"

	"github.com/xriskon/librarian/internal/library"
)

// progress renders a terminal bar per section kind as a pass advances.
// Batches are sequential, so each Start opens a fresh bar container and
// Finish flushes it; the same observer serves any number of passes.
type progress struct {
	container *mpb.Progress
	bar       *mpb.Bar
}

func newProgress() *progress {
	return &progress{}
}

func (p *progress) Start(kind library.Kind, total int) {
	p.container = mpb.New(mpb.WithWidth(64))
	p.bar = p.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(string(kind), decor.WC{W: 8, C: decor.DidentRight}),
			decor.CountersNoUnit(" %3d/%3d", decor.WC{W: 8, C: decor.DidentRight}),
		),
	)
}

func (p *progress) Advance() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

func (p *progress) Finish() {
	if p.container == nil {
		return
	}
	p.bar.SetTotal(p.bar.Current(), true)
	p.container.Wait()
	p.container, p.bar = nil, nil
}
