package chart

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/san-kum/typhoonviz/internal/dataset"
	"github.com/san-kum/typhoonviz/internal/geom"
)

// Assembly says how generated frames become a figure.
type Assembly int

const (
	// AssembleDropFirst uses frame 0 as the initial data and animates 1..N-1.
	AssembleDropFirst Assembly = iota
	// AssembleKeepAll uses frame 0 as the initial data and animates all frames.
	AssembleKeepAll
	// AssembleStatic uses the chart's Initial traces and animates all frames.
	AssembleStatic
)

type Chart interface {
	Name() string
	Output() string
	Frames() int
	Layout() Layout
	Assembly() Assembly
	Labels() LabelSet
	Frame(f int) Frame
}

// Initializer is implemented by charts whose initial view differs from frame 0.
type Initializer interface {
	Initial() Frame
}

// Options tune a chart at construction. Zero values select the chart defaults.
type Options struct {
	Frames int
	Labels *LabelSet
	Flow   geom.FlowParams
	Rand   *rand.Rand
}

type base struct {
	name     string
	output   string
	frames   int
	assembly Assembly
	labels   LabelSet
	ds       *dataset.Dataset
	rng      *rand.Rand
	flow     geom.FlowParams
}

func newBase(name, output string, defFrames int, defLabels LabelSet, asm Assembly, ds *dataset.Dataset, opts Options) base {
	b := base{
		name:     name,
		output:   output,
		frames:   defFrames,
		assembly: asm,
		labels:   defLabels,
		ds:       ds,
		rng:      opts.Rand,
		flow:     opts.Flow,
	}
	if opts.Frames > 0 {
		b.frames = opts.Frames
	}
	if opts.Labels != nil {
		b.labels = *opts.Labels
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if b.flow.NumCurves <= 0 {
		b.flow.NumCurves = geom.DefaultFlowCurves
	}
	if b.flow.CurvePoints <= 0 {
		b.flow.CurvePoints = geom.DefaultFlowPoints
	}
	return b
}

func (b *base) Name() string       { return b.name }
func (b *base) Output() string     { return b.output }
func (b *base) Frames() int        { return b.frames }
func (b *base) Assembly() Assembly { return b.assembly }
func (b *base) Labels() LabelSet   { return b.labels }

func (b *base) newFrame(f int) Frame {
	return Frame{Name: strconv.Itoa(f), Progress: make([]float64, 0, b.ds.Len())}
}

func (b *base) title() string {
	return b.labels.Title(b.name, b.ds)
}

// FrameAt generates a single frame after checking the index.
func FrameAt(c Chart, f int) (Frame, error) {
	if f < 0 || f >= c.Frames() {
		return Frame{}, &FrameError{Chart: c.Name(), Frame: f, Wrapped: ErrFrameRange}
	}
	return c.Frame(f), nil
}

// Replay regenerates frames 0..f in order and returns frame f. It consumes
// the chart's generator exactly as a full Animator run would up to that frame.
func Replay(c Chart, f int) (Frame, error) {
	if f < 0 || f >= c.Frames() {
		return Frame{}, &FrameError{Chart: c.Name(), Frame: f, Wrapped: ErrFrameRange}
	}
	if init, ok := c.(Initializer); ok && c.Assembly() == AssembleStatic {
		init.Initial()
	}
	var fr Frame
	for i := 0; i <= f; i++ {
		fr = c.Frame(i)
	}
	return fr, nil
}
