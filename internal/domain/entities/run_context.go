package entities

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const (
	// RunTimestampLayout formats the run start time in the run directory name.
	RunTimestampLayout = "2006-01-02_15-04-05"

	summaryRuleWidth = 50
)

// ResolveReport counts what one resolution pass did.
type ResolveReport struct {
	Processed int // files handed to the annotation engine
	Annotated int // files written to the run directory
	Skipped   int // files left out, each with a diagnostic
}

// Add accumulates the outcome of one engine invocation.
func (r *ResolveReport) Add(file *AnnotatedFile) {
	r.Processed++
	if file == nil {
		r.Skipped++
		return
	}
	r.Annotated++
}

// RunContext is the per-run state. RunDir is computed once from the start
// time and never reused by another run.
type RunContext struct {
	Target     Target
	OutputRoot string
	StartedAt  time.Time
	RunDir     string
	Report     ResolveReport
}

// NewRunContext computes the run directory for target under outputRoot.
func NewRunContext(target Target, outputRoot string, startedAt time.Time) *RunContext {
	return &RunContext{
		Target:     target,
		OutputRoot: outputRoot,
		StartedAt:  startedAt,
		RunDir:     filepath.Join(outputRoot, RunDirName(target, startedAt)),
	}
}

// RunDirName is "{timestamp}_{sanitized target name}".
func RunDirName(target Target, startedAt time.Time) string {
	return startedAt.Format(RunTimestampLayout) + "_" + target.RunName()
}

// Summary renders the fixed block printed when a run completes.
func (c *RunContext) Summary() string {
	rule := strings.Repeat("=", summaryRuleWidth)
	var builder strings.Builder
	builder.WriteString("\n" + rule + "\n")
	builder.WriteString("Analysis complete!\n")
	fmt.Fprintf(&builder, "Commented files are saved in: %s\n", c.RunDir)
	fmt.Fprintf(&builder, "To navigate to the output directory, you can run:\ncd %s\n", c.RunDir)
	builder.WriteString(rule + "\n")
	return builder.String()
}
