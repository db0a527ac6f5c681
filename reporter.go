package wecomkit

// StageReport describes one completed pipeline stage. Reports carry sizes,
// pad counts and the frame nonce, never raw key bytes, so they are safe to
// hand to a logger.
type StageReport struct {
	Stage  Stage
	Detail string
}

// Reporter receives progress reports as the pipeline advances. It replaces
// inline printing: the pipeline itself stays pure and side-effect free, and
// callers decide where the narration goes. Implementations must be safe for
// whatever concurrency the caller applies to Decrypt itself.
type Reporter interface {
	ReportStage(StageReport)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(StageReport)

// ReportStage calls f.
func (f ReporterFunc) ReportStage(r StageReport) {
	f(r)
}

// MultiReporter returns a Reporter that fans each report out to every
// reporter in order.
func MultiReporter(reporters ...Reporter) Reporter {
	return multiReporter(reporters)
}

type multiReporter []Reporter

func (m multiReporter) ReportStage(r StageReport) {
	for _, reporter := range m {
		reporter.ReportStage(r)
	}
}
