package maintpage

import (
	"errors"
	"fmt"
)

// Stage is a state of the build pipeline. A build moves forward through
// the states in order, each at most once, or ends in StageFailed.
type Stage int

const (
	StageStart Stage = iota
	StageConfigLoaded
	StageStyleCompiled
	StagePruned
	StageMinified
	StageRendered
	StageWritten
	StageDone
	StageFailed
)

var stageNames = [...]string{
	StageStart:         "start",
	StageConfigLoaded:  "config-loaded",
	StageStyleCompiled: "style-compiled",
	StagePruned:        "pruned",
	StageMinified:      "minified",
	StageRendered:      "rendered",
	StageWritten:       "written",
	StageDone:          "done",
	StageFailed:        "failed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// step names the operation that moves the pipeline out of s.
func (s Stage) step() string {
	switch s {
	case StageStart:
		return "loading page data"
	case StageConfigLoaded:
		return "compiling stylesheet"
	case StageStyleCompiled:
		return "pruning unused CSS"
	case StagePruned:
		return "minifying CSS"
	case StageMinified:
		return "rendering template"
	case StageRendered:
		return "writing output"
	default:
		return s.String()
	}
}

// StageError reports the last state a failed build reached. The wrapped
// error carries the sentinel (ErrDataParse, ErrMinify, ...).
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return e.Stage.step() + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// FailedStage returns the last state reached by the build that produced
// err, and false if err did not come from a build.
func FailedStage(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}
	return StageFailed, false
}
