package wecomkit

import "fmt"

// pipelineConfig holds per-call pipeline configuration.
type pipelineConfig struct {
	strictPadding bool
	reporter      Reporter
}

// Option configures a Decrypt or Encrypt call.
type Option func(*pipelineConfig)

// WithStrictPadding enables full PKCS7 validation during padding removal:
// the pad value must be 1..32 and every removed byte must equal it. The
// default trusts the trailing pad byte unconditionally, matching the
// originating platform; enable this only when rejecting malformed padding
// matters more than bug-for-bug compatibility.
func WithStrictPadding() Option {
	return func(c *pipelineConfig) {
		c.strictPadding = true
	}
}

// WithReporter installs a Reporter that receives a progress report after
// each completed pipeline stage.
func WithReporter(r Reporter) Option {
	return func(c *pipelineConfig) {
		c.reporter = r
	}
}

func newPipelineConfig(opts []Option) *pipelineConfig {
	cfg := &pipelineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *pipelineConfig) report(stage Stage, format string, args ...any) {
	if c.reporter == nil {
		return
	}
	c.reporter.ReportStage(StageReport{Stage: stage, Detail: fmt.Sprintf(format, args...)})
}
