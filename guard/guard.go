// Package guard implements the re-entrancy guard that keeps the version
// bump from triggering itself. Amending a commit runs the post-commit
// hook again, so the guard must be engaged before the amend and checked
// before any work is done.
package guard

import (
	// Stdlib
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	// Internal
	"github.com/cascii/verflow/action"
	"github.com/cascii/verflow/errs"
)

// EnvFlag is inherited by child processes, so the nested hook invocation
// sees it even before the marker file check.
const EnvFlag = "VERFLOW_BUMPING"

const markerFilename = "VERFLOW_BUMPING"

func markerPath(gitDir string) string {
	return filepath.Join(gitDir, markerFilename)
}

// Engaged reports whether a bump is already in progress. Either signal
// suffices: the environment flag or the marker file in the git dir.
func Engaged(gitDir string) bool {
	if os.Getenv(EnvFlag) != "" {
		return true
	}
	_, err := os.Stat(markerPath(gitDir))
	return err == nil
}

// Engage sets the guard and returns the action that releases it again.
// The marker file is scoped to the repository, so unrelated repositories
// are never affected.
func Engage(gitDir string) (action.Action, error) {
	task := fmt.Sprintf("Engage the re-entrancy guard in '%v'", gitDir)

	content := strconv.Itoa(os.Getpid()) + "\n"
	if err := os.WriteFile(markerPath(gitDir), []byte(content), 0644); err != nil {
		return nil, errs.NewError(task, err)
	}
	os.Setenv(EnvFlag, "1")

	return action.ActionFunc(func() error {
		return Release(gitDir)
	}), nil
}

// Release clears both guard signals. Releasing a guard that is not
// engaged is a no-op.
func Release(gitDir string) error {
	os.Unsetenv(EnvFlag)
	if err := os.Remove(markerPath(gitDir)); err != nil && !os.IsNotExist(err) {
		task := fmt.Sprintf("Release the re-entrancy guard in '%v'", gitDir)
		return errs.NewError(task, err)
	}
	return nil
}
