// Package benchbar provides a really simple progress bar for the benchmarking
// process.
package benchbar

import (
	"github.com/schollz/progressbar/v3"
)

type ProgressBar struct {
	pb *progressbar.ProgressBar
}

// NewBar returns a bar that renders to stdout.
func NewBar(description string, maxItems int) *ProgressBar {
	pb := progressbar.Default(int64(maxItems), description)
	_ = pb.Set(0)

	return &ProgressBar{pb: pb}
}

// NewSilentBar returns a bar that tracks progress without rendering it.
func NewSilentBar(description string, maxItems int) *ProgressBar {
	return &ProgressBar{pb: progressbar.DefaultSilent(int64(maxItems), description)}
}

func (p *ProgressBar) Inc() {
	_ = p.pb.Add(1)
}

func (p *ProgressBar) Finish() {
	_ = p.pb.Finish()
	_ = p.pb.Close()
}
