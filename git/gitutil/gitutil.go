package gitutil

import (
	// Stdlib
	"bytes"
	"fmt"
	"path/filepath"

	// Internal
	"github.com/cascii/verflow/errs"
	"github.com/cascii/verflow/log"
	"github.com/cascii/verflow/shell"
)

// Run runs git at the repository root, no matter the current working
// directory, so that root-relative paths can always be passed to it.
func Run(args ...string) (stdout *bytes.Buffer, err error) {
	root, err := RepositoryRootAbsolutePath()
	if err != nil {
		return nil, err
	}

	argsList := make([]string, 2, 2+len(args))
	argsList[0], argsList[1] = "git", "--no-pager"
	argsList = append(argsList, args...)

	task := fmt.Sprintf("Run git with args = %#v", args)
	log.V(log.Debug).Log(task)
	stdout, stderr, err := shell.RunInDir(root, argsList...)
	if err != nil {
		return nil, errs.NewErrorWithHint(task, err, stderr.String())
	}
	return stdout, nil
}

func RunCommand(command string, args ...string) (stdout *bytes.Buffer, err error) {
	argsList := make([]string, 1, 1+len(args))
	argsList[0] = command
	argsList = append(argsList, args...)
	return Run(argsList...)
}

// RepositoryRootAbsolutePath must not go through Run, which runs
// everything at the repository root this function discovers.
func RepositoryRootAbsolutePath() (path string, err error) {
	task := "Get the repository root absolute path"
	stdout, stderr, err := shell.Run("git", "--no-pager", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", errs.NewErrorWithHint(task, err, stderr.String())
	}
	return string(bytes.TrimSpace(stdout.Bytes())), nil
}

// GitDirAbsolutePath returns the absolute path of the repository git dir,
// usually <root>/.git.
func GitDirAbsolutePath() (path string, err error) {
	task := "Get the git directory absolute path"
	stdout, err := Run("rev-parse", "--git-dir")
	if err != nil {
		return "", errs.NewError(task, err)
	}
	gitDir := string(bytes.TrimSpace(stdout.Bytes()))
	if filepath.IsAbs(gitDir) {
		return gitDir, nil
	}

	root, err := RepositoryRootAbsolutePath()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, gitDir), nil
}

func CurrentBranch() (branch string, err error) {
	stdout, err := Run("symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return string(bytes.TrimSpace(stdout.Bytes())), nil
}
