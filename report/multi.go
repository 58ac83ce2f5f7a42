package report

import (
	"github.com/samber/lo"

	"github.com/katalvlaran/tspbrute/tsp"
)

// multi forwards every call to each sink in order.
type multi []tsp.Sink

// Multi returns a sink that fans out to sinks in the given order.
// Nil entries are dropped.
func Multi(sinks ...tsp.Sink) tsp.Sink {
	return multi(lo.Filter(sinks, func(s tsp.Sink, _ int) bool { return s != nil }))
}

func (m multi) Record(ev tsp.Evaluation) {
	for _, s := range m {
		s.Record(ev)
	}
}

func (m multi) Finalize(res tsp.Result) {
	for _, s := range m {
		s.Finalize(res)
	}
}
