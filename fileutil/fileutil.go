package fileutil

import (
	// Stdlib
	"errors"
	"fmt"
	"io"
	"os"

	// Internal
	"github.com/cascii/verflow/action"
	"github.com/cascii/verflow/errs"
	"github.com/cascii/verflow/log"
)

func EnsureDirectoryExists(path string) (action.Action, error) {
	// Check whether the directory exists already.
	task := fmt.Sprintf("Check whether '%v' exists and is a directory", path)
	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errs.NewError(task, err)
		}
	} else {
		// In case the path exists, make sure it is a directory.
		if !info.IsDir() {
			return nil, errs.NewError(task, errors.New("not a directory: "+path))
		}
		// We are done.
		return action.Noop, nil
	}

	// Now we know that path does not exist, so we need to create it.
	createTask := fmt.Sprintf("Create directory '%v'", path)
	log.Run(createTask)
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, errs.NewError(createTask, err)
	}

	return action.ActionFunc(func() error {
		log.Rollback(createTask)
		task := fmt.Sprintf("Remove directory '%v'", path)
		if err := os.RemoveAll(path); err != nil {
			return errs.NewError(task, err)
		}
		return nil
	}), nil
}

// CopyFile copies src to dst, marking dst executable.
func CopyFile(src, dst string) error {
	task := fmt.Sprintf("Copy '%v' to '%v'", src, dst)

	in, err := os.Open(src)
	if err != nil {
		return errs.NewError(task, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return errs.NewError(task, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return errs.NewError(task, err)
	}
	return nil
}
