package fetcher

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type progress interface {
	Increment()
	Complete()
}

type noProgress struct{}

func (noProgress) Increment() {}
func (noProgress) Complete()  {}

type barProgress struct {
	progress *mpb.Progress
	bar      *mpb.Bar
}

func newProgress(enabled bool, w io.Writer, total int) progress {
	if !enabled || total == 0 {
		return noProgress{}
	}
	p := mpb.New(mpb.WithOutput(w), mpb.WithWidth(64))
	return &barProgress{
		progress: p,
		bar:      p.New(int64(total), barStyle(), barOptions()...),
	}
}

func (pb *barProgress) Increment() { pb.bar.Increment() }

// Complete blocks until the bar has been rendered for the last time.
func (pb *barProgress) Complete() {
	if !pb.bar.Completed() {
		pb.bar.Abort(false)
	}
	pb.progress.Wait()
}

func barStyle() mpb.BarStyleComposer {
	return mpb.BarStyle().Lbound("").Filler("█").Padding("░").Tip("").Refiller("").Rbound("")
}

func barOptions() []mpb.BarOption {
	return []mpb.BarOption{
		mpb.BarWidth(50),
		mpb.PrependDecorators(
			decor.Name("Steps: "),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "Done!"),
		),
	}
}
