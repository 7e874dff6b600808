package hooks

import (
	// Stdlib
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	// Internal
	"github.com/cascii/verflow/errs"
	"github.com/cascii/verflow/fileutil"
	"github.com/cascii/verflow/git/gitutil"
	"github.com/cascii/verflow/log"
	"github.com/cascii/verflow/metadata"
	"github.com/cascii/verflow/prompt"
	"github.com/cascii/verflow/shell"

	// Vendor
	"github.com/fatih/color"
	"github.com/kardianos/osext"
	"github.com/shiena/ansicolor"
)

type HookType string

const HookTypePostCommit HookType = "post-commit"

const hookPrefix = "verflow-"

func getHookFileName(typ HookType) string {
	if runtime.GOOS == "windows" {
		return hookPrefix + string(typ) + ".exe"
	} else {
		return hookPrefix + string(typ)
	}
}

// CheckAndUpsert makes sure the verflow git hook of the given type is
// installed in the current repository. It prompts the user before
// replacing a hook it does not recognize.
func CheckAndUpsert(typ HookType) error {
	// Ping the git hook with our secret argument.
	gitDir, err := gitutil.GitDirAbsolutePath()
	if err != nil {
		return err
	}

	hooksDir := filepath.Join(gitDir, "hooks")
	hookPath := filepath.Join(hooksDir, string(typ))
	stdout, _, _ := shell.Run(hookPath, "-"+versionFlag)

	// In case the versions match, we are done here.
	if strings.TrimSpace(stdout.String()) == metadata.Version {
		return nil
	}

	// Get the hook executable absolute path. It's supposed to be installed
	// in the same directory as the verflow executable itself.
	task := "Get the executable folder absolute path"
	binDir, err := osext.ExecutableFolder()
	if err != nil {
		return errs.NewError(task, err)
	}
	hookBin := filepath.Join(binDir, getHookFileName(typ))

	if _, err := fileutil.EnsureDirectoryExists(hooksDir); err != nil {
		return err
	}

	// Check whether there is a hook already present in the repository.
	// If there is no hook, we don't have to ask the user, we can just install it.
	task = fmt.Sprintf("Check whether there is a git %v hook already installed", typ)
	_, err = os.Stat(hookPath)
	if err != nil && !os.IsNotExist(err) {
		return errs.NewError(task, err)
	}

	if err == nil {
		// Prompt the user to confirm replacing the present hook.
		task = fmt.Sprintf("Prompt the user to confirm the %v hook", typ)
		confirmed, err := prompt.Confirm(`
I need my own git ` + string(typ) + ` hook to be placed in the repository.
Shall I create or replace your current ` + string(typ) + ` hook?`)
		fmt.Println()
		if err != nil {
			return errs.NewError(task, err)
		}
		if !confirmed {
			// User stubbornly refuses to let us overwrite their hook.
			fmt.Printf(`I need the hook in order to do my job!

Please make sure the executable located at

  %v

runs as your `+string(typ)+` hook and run me again!

`, hookBin)
			return errs.NewError(task,
				fmt.Errorf("verflow git %v hook not detected", typ))
		}
	}

	// Install the verflow git hook by copying the hook executable
	// from the expected absolute path to the git hooks directory.
	task = fmt.Sprintf("Install the verflow git %v hook", typ)
	if err := fileutil.CopyFile(hookBin, hookPath); err != nil {
		return errs.NewError(task, err)
	}
	log.Log(fmt.Sprintf("verflow git %v hook installed", typ))

	return nil
}

// PrintMissingVersionWarning tells the operator that the hook is
// installed but the canonical artifact does not carry a version field,
// so there is nothing the automation can do in this repository.
func PrintMissingVersionWarning(writer io.Writer, artifactPath string) (n int64, err error) {
	var output bytes.Buffer

	redBold := color.New(color.FgRed).Add(color.Bold).SprintFunc()
	fmt.Fprintln(&output, redBold("Warning: no version string found in '"+artifactPath+"'."))

	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintln(&output, red("The version bump hook is installed, but it has nothing to work with."))
	fmt.Fprintln(&output, red(`The canonical manifest must contain: version = "X.Y.Z"`))

	return io.Copy(ansicolor.NewAnsiColorWriter(writer), &output)
}
