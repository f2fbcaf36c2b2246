package status

import (
	"math"
	"sync/atomic"
)

// Gauge is an atomic float64 reading; the zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Peak raises the gauge to v if v is larger and returns the resulting value
func (g *Gauge) Peak(v float64) float64 {
	for {
		old := g.bits.Load()
		cur := math.Float64frombits(old)
		if v <= cur {
			return cur
		}
		if g.bits.CompareAndSwap(old, math.Float64bits(v)) {
			return v
		}
	}
}

// Label is an atomic short string, cut to MaxLabelRunes so the overlay column stays narrow
type Label struct {
	ptr atomic.Pointer[string]
}

// MaxLabelRunes bounds a label's length
const MaxLabelRunes = 24

func (l *Label) Store(s string) {
	if r := []rune(s); len(r) > MaxLabelRunes {
		s = string(r[:MaxLabelRunes])
	}
	l.ptr.Store(&s)
}

func (l *Label) Load() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
