package pipeline

import "fmt"

//go:generate go tool stringer -type=Stage -linecomment -output=stage_string.go

// Stage identifies one step of a generator run.
type Stage int

const (
	_ Stage = iota // zero value is not a stage

	StageAcquire   // acquire
	StageEnumerate // enumerate
	StageReconcile // reconcile
	StageOverride  // override
	StageResolve   // resolve
	StageEmit      // emit
	StageWrite     // write
)

// StageError is a fatal failure in a single stage.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}
