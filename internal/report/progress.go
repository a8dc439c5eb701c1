package report

import (
	"fmt"
	"io"
)

// DotProgress prints one dot per successful probe and one x per failure,
// wrapping the line every 80 marks. It implements checker.ProgressSink.
type DotProgress struct {
	w     io.Writer
	count int
	width int
}

func NewDotProgress(w io.Writer) *DotProgress {
	return &DotProgress{w: w, width: 80}
}

func (p *DotProgress) Probe(url string, ok bool) {
	mark := "."
	if !ok {
		mark = "x"
	}
	fmt.Fprint(p.w, mark)
	p.count++
	if p.count > p.width {
		fmt.Fprintln(p.w)
		p.count = 0
	}
}
