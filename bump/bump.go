// Package bump implements the automated version bump workflow:
// inspect the latest commit message, advance the project version
// accordingly, rewrite the configuration artifacts and fold the
// change into the commit that triggered it.
package bump

import (
	// Stdlib
	"fmt"
	"strings"

	// Internal
	"github.com/cascii/verflow/config"
	"github.com/cascii/verflow/errs"
	"github.com/cascii/verflow/git"
	"github.com/cascii/verflow/git/gitutil"
	"github.com/cascii/verflow/guard"
	"github.com/cascii/verflow/log"
	"github.com/cascii/verflow/manifest"
	"github.com/cascii/verflow/shell"
	"github.com/cascii/verflow/version"
)

type Decision int

const (
	DecisionNone Decision = iota
	DecisionPatch
	DecisionMinor
)

func (decision Decision) String() string {
	switch decision {
	case DecisionPatch:
		return "patch"
	case DecisionMinor:
		return "minor"
	default:
		return "none"
	}
}

// Decide maps a commit message onto a bump decision using case-insensitive
// substring search. "feature" is checked first on purpose: when both
// keywords appear in the message, the minor bump wins.
//
// The major component is never touched here. Major bumps are always an
// explicit human action, see the 'version set' command.
func Decide(message string) Decision {
	msg := strings.ToLower(message)
	switch {
	case strings.Contains(msg, "feature"):
		return DecisionMinor
	case strings.Contains(msg, "fix"):
		return DecisionPatch
	default:
		return DecisionNone
	}
}

type Options struct {
	// Base, when set, is bumped instead of the current canonical version.
	Base *version.Version
	// Message, when set, replaces the latest commit message.
	Message string
}

// Run executes the whole bump workflow. It is strictly sequential:
// read the message, decide, compute the new version, rewrite the
// artifacts in a fixed order, refresh the lock file, stage, amend.
//
// Run returns early and without side effects when the re-entrancy
// guard is engaged, when the message contains no bump keyword, or
// when the computed version equals the current one.
func Run(opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}

	root, err := gitutil.RepositoryRootAbsolutePath()
	if err != nil {
		return err
	}
	gitDir, err := gitutil.GitDirAbsolutePath()
	if err != nil {
		return err
	}

	// Bumping a commit amends it, which runs the post-commit hook again.
	// Break the cycle here, before touching anything.
	if guard.Engaged(gitDir) {
		log.V(log.Debug).Log("Re-entrancy guard engaged, nothing to do")
		return nil
	}

	message := opts.Message
	if message == "" {
		message, err = git.LastCommitMessage()
		if err != nil {
			return err
		}
	}

	decision := Decide(message)
	if decision == DecisionNone {
		log.V(log.Verbose).Log("No bump keyword in the commit message, nothing to do")
		return nil
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	current, err := manifest.CanonicalVersion(root, cfg.BackendManifest)
	if err != nil {
		return err
	}

	base := opts.Base
	if base == nil {
		base = current
	}

	var next *version.Version
	switch decision {
	case DecisionMinor:
		next = base.IncrementMinor()
	case DecisionPatch:
		next = base.IncrementPatch()
	}

	if next.EQ(current.Version) {
		log.Log(fmt.Sprintf("No version change: %v", current))
		return nil
	}

	// Rewrite the artifacts in the fixed order. A miss in one of them
	// is not fatal, the workflow continues with whatever was rewritten.
	var staged []string
	for _, art := range manifest.Artifacts(cfg) {
		changed, err := art.Rewrite(root, current, next)
		if err != nil {
			return err
		}
		if changed {
			staged = append(staged, art.Path)
		}
	}
	if len(staged) == 0 {
		log.Log(fmt.Sprintf("No changes made for version: %v", current))
		return nil
	}

	refreshLockFile(root, cfg, &staged)

	guardAction, err := guard.Engage(gitDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := guardAction.Rollback(); err != nil {
			errs.Log(err)
		}
	}()

	task := "Stage the rewritten files"
	log.Run(task)
	if err := git.Add(staged...); err != nil {
		return errs.NewError(task, err)
	}

	task = "Amend the current commit"
	log.Run(task)
	if err := git.Amend(); err != nil {
		return errs.NewError(task, err)
	}

	log.Log(fmt.Sprintf("Version bumped: %v -> %v (%v)", base, next, decision))
	return nil
}

// refreshLockFile runs the configured lock refresh command so that the
// lock file picks up the rewritten manifest, then schedules the lock
// file for staging when it changed. Strictly best-effort, a failure
// here never stops the bump.
func refreshLockFile(root string, cfg *config.Config, staged *[]string) {
	if len(cfg.LockRefreshCommand) == 0 {
		return
	}

	task := fmt.Sprintf("Refresh the dependency lock file ('%v')",
		strings.Join(cfg.LockRefreshCommand, " "))
	log.Run(task)
	_, stderr, err := shell.RunInDir(root, cfg.LockRefreshCommand...)
	if err != nil {
		errs.LogError(task, err, stderr.String())
		return
	}

	modified, err := git.IsFileModified(cfg.LockFile)
	if err != nil {
		errs.Log(err)
		return
	}
	if modified {
		*staged = append(*staged, cfg.LockFile)
	}
}
