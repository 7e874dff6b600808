package errs

import (
	// Stdlib
	"fmt"

	// Internal
	"github.com/cascii/verflow/log"
)

// Err annotates an error with the task that failed and an optional hint
// that is printed for the operator when the error is logged.
// Errors can be chained by wrapping an *Err in another *Err.
type Err struct {
	task string
	err  error
	hint string
}

func NewError(task string, err error) *Err {
	return NewErrorWithHint(task, err, "")
}

func NewErrorWithHint(task string, err error, hint string) *Err {
	return &Err{task: task, err: err, hint: hint}
}

func (err *Err) Error() string {
	return err.err.Error()
}

func (err *Err) Task() string {
	return err.task
}

func (err *Err) Hint() string {
	return err.hint
}

func (err *Err) Unwrap() error {
	return err.err
}

// RootCause returns the error at the bottom of the error chain.
func RootCause(err error) error {
	for {
		ex, ok := err.(*Err)
		if !ok {
			return err
		}
		err = ex.err
	}
}

// Log prints the whole error chain to the operator, one [FAIL] line
// per failed task, hints included, and returns the error unchanged.
func Log(err error) error {
	logger := log.V(log.Info)
	for {
		ex, ok := err.(*Err)
		if !ok {
			logger.NewLine(fmt.Sprintf("(error = %v)", err))
			return err
		}
		logger.Fail(ex.task)
		if ex.hint != "" {
			logger.Print(ex.hint)
		}
		if ex.err == nil {
			return err
		}
		err = ex.err
	}
}

func LogError(task string, err error, hint string) {
	Log(NewErrorWithHint(task, err, hint))
}

// Fatal logs the error and terminates the process with a non-zero exit status.
func Fatal(err error) {
	if err != nil {
		Log(err)
		log.Fatalln("\nError: " + RootCause(err).Error())
	}
}
