package chart

import (
	"fmt"
	"sort"

	"github.com/san-kum/typhoonviz/internal/dataset"
)

// Constructor builds a chart over a dataset.
type Constructor func(ds *dataset.Dataset, opts Options) Chart

type Registry struct {
	charts map[string]Constructor
}

// NewRegistry returns a registry holding the four built-in charts.
func NewRegistry() *Registry {
	r := &Registry{charts: make(map[string]Constructor)}

	r.charts["flow"] = func(ds *dataset.Dataset, opts Options) Chart { return NewFlow(ds, opts) }
	r.charts["heart"] = func(ds *dataset.Dataset, opts Options) Chart { return NewHeart(ds, opts) }
	r.charts["interactive"] = func(ds *dataset.Dataset, opts Options) Chart { return NewInteractive(ds, opts) }
	r.charts["star"] = func(ds *dataset.Dataset, opts Options) Chart { return NewStar(ds, opts) }

	return r
}

// Register adds or replaces a constructor.
func (r *Registry) Register(name string, fn Constructor) {
	r.charts[name] = fn
}

func (r *Registry) Get(name string, ds *dataset.Dataset, opts Options) (Chart, error) {
	fn, ok := r.charts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownChart, name, r.Names())
	}
	return fn(ds, opts), nil
}

func (r *Registry) Has(name string) bool {
	_, ok := r.charts[name]
	return ok
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.charts))
	for name := range r.charts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
