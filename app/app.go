package app

import (
	// Internal
	"github.com/cascii/verflow/app/appflags"
	"github.com/cascii/verflow/errs"
	"github.com/cascii/verflow/git/gitutil"
	"github.com/cascii/verflow/log"
)

func Init() error {
	// Set up logging.
	log.SetV(log.MustStringToLevel(appflags.FlagLog.Value()))

	// Make sure we are inside a git repository.
	if _, err := gitutil.RepositoryRootAbsolutePath(); err != nil {
		return err
	}

	return nil
}

func InitOrDie() {
	if err := Init(); err != nil {
		errs.Fatal(err)
	}
}
