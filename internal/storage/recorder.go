package storage

import "github.com/san-kum/typhoonviz/internal/chart"

// Recorder collects one FrameRow per generated frame.
type Recorder struct {
	rows []FrameRow
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Reset(string) { r.rows = r.rows[:0] }

func (r *Recorder) OnFrame(_ string, index int, f chart.Frame) {
	r.rows = append(r.rows, FrameRow{
		Frame:      index,
		Primitives: len(f.Traces),
		Points:     f.NumPoints(),
		Progress:   f.MeanProgress(),
	})
}

func (r *Recorder) Rows() []FrameRow {
	out := make([]FrameRow, len(r.rows))
	copy(out, r.rows)
	return out
}
