// Package status collects live diagnostics for the debug overlay
package status

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// Registry is the metrics facade behind the debug overlay
type Registry struct {
	Flags    *Family[atomic.Bool]
	Counters *Family[atomic.Int64]
	Gauges   *Family[Gauge]
	Labels   *Family[Label]
}

func NewRegistry() *Registry {
	return &Registry{
		Flags:    NewFamily[atomic.Bool](),
		Counters: NewFamily[atomic.Int64](),
		Gauges:   NewFamily[Gauge](),
		Labels:   NewFamily[Label](),
	}
}

// Len returns the number of metrics across all families
func (r *Registry) Len() int {
	return r.Flags.Len() + r.Counters.Len() + r.Gauges.Len() + r.Labels.Len()
}

// Entry is one formatted metric
type Entry struct {
	Key   string
	Value string
}

// Entries formats every metric, sorted by key; gauges show two decimals
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, r.Len())
	r.Flags.Each(func(k string, v *atomic.Bool) {
		out = append(out, Entry{k, strconv.FormatBool(v.Load())})
	})
	r.Counters.Each(func(k string, v *atomic.Int64) {
		out = append(out, Entry{k, strconv.FormatInt(v.Load(), 10)})
	})
	r.Gauges.Each(func(k string, v *Gauge) {
		out = append(out, Entry{k, strconv.FormatFloat(v.Get(), 'f', 2, 64)})
	})
	r.Labels.Each(func(k string, v *Label) {
		out = append(out, Entry{k, v.Load()})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
