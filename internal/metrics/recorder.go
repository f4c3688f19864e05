// Package metrics records build observability data. The Prometheus
// recorder backs the preview server's /metrics endpoint; NoopRecorder
// serves one-shot CLI builds.
package metrics

import "time"

// Recorder observes build execution.
type Recorder interface {
	ObserveLocaleBuild(locale string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	AddPagesRendered(locale string, n int)
	IncBuildOutcome(outcome string)
	AddSearchEntriesRemoved(n int)
}

// NoopRecorder discards all observations.
type NoopRecorder struct{}

func (NoopRecorder) ObserveLocaleBuild(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)       {}
func (NoopRecorder) AddPagesRendered(string, int)             {}
func (NoopRecorder) IncBuildOutcome(string)                   {}
func (NoopRecorder) AddSearchEntriesRemoved(int)              {}
