package git

import (
	// Stdlib
	"bytes"
	"strings"

	// Internal
	"github.com/cascii/verflow/git/gitutil"
)

func Add(paths ...string) error {
	args := append([]string{"--"}, paths...)
	_, err := gitutil.RunCommand("add", args...)
	return err
}

func Commit(message string) error {
	_, err := gitutil.RunCommand("commit", "-m", message)
	return err
}

// Amend folds the staged changes into the current commit,
// keeping the commit message untouched.
func Amend() error {
	_, err := gitutil.RunCommand("commit", "--amend", "--no-edit")
	return err
}

// LastCommitMessage returns the full message body of the commit at HEAD.
func LastCommitMessage() (message string, err error) {
	stdout, err := gitutil.RunCommand("log", "-1", "--pretty=%B")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}

func StatusPorcelain() (status string, err error) {
	stdout, err := gitutil.RunCommand("status", "--porcelain")
	if err != nil {
		return "", err
	}
	return stdout.String(), nil
}

// IsFileModified reports whether the file at the given path relative to
// the repository root shows up in git status as modified.
func IsFileModified(pathFromRoot string) (modified bool, err error) {
	status, err := StatusPorcelain()
	if err != nil {
		return false, err
	}
	for _, line := range strings.Split(status, "\n") {
		if len(line) < 4 {
			continue
		}
		if strings.TrimSpace(line[3:]) == pathFromRoot && bytes.ContainsAny([]byte(line[:2]), "MARC") {
			return true, nil
		}
	}
	return false, nil
}
