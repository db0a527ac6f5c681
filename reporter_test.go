package wecomkit

import (
	"testing"
)

func TestReporterFunc(t *testing.T) {
	var got StageReport
	r := ReporterFunc(func(sr StageReport) { got = sr })

	r.ReportStage(StageReport{Stage: StageDecrypt, Detail: "removed 10 padding bytes"})

	if got.Stage != StageDecrypt || got.Detail != "removed 10 padding bytes" {
		t.Errorf("got %+v", got)
	}
}

func TestMultiReporter_FanOut(t *testing.T) {
	var first, second []Stage
	r := MultiReporter(
		ReporterFunc(func(sr StageReport) { first = append(first, sr.Stage) }),
		ReporterFunc(func(sr StageReport) { second = append(second, sr.Stage) }),
	)

	r.ReportStage(StageReport{Stage: StageNormalizeKey})
	r.ReportStage(StageReport{Stage: StageParse})

	for _, got := range [][]Stage{first, second} {
		if len(got) != 2 || got[0] != StageNormalizeKey || got[1] != StageParse {
			t.Errorf("fan-out order = %v", got)
		}
	}
}

func TestMultiReporter_Empty(t *testing.T) {
	// No reporters is valid; reports go nowhere.
	MultiReporter().ReportStage(StageReport{Stage: StageDecrypt})
}
