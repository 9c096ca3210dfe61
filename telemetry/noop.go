package telemetry

import "io"

// noOpCollector is the collector used when telemetry is disabled.
// Every call is a cheap no-op, so instrumented code never has to
// check whether a real collector is installed.
type noOpCollector struct{}

func (noOpCollector) Start(name string) Timer {
	return noOpTimer{}
}

func (noOpCollector) Report(w io.Writer, styles interface{}) {}

type noOpTimer struct{}

func (noOpTimer) End() {}

func (noOpTimer) Child(name string) Timer {
	return noOpTimer{}
}
