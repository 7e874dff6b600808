package hooks

import (
	// Stdlib
	"flag"
	"fmt"
	"os"

	// Internal
	"github.com/cascii/verflow/metadata"
)

const versionFlag = "verflow.version"

func IdentifyYourself() {
	// Add a special command line flag.
	flagIdentify := flag.Bool(versionFlag, false,
		"print the associated verflow version and exit")

	// Parse the command line.
	flag.Parse()

	// In case the special flag is set, print the desired output and exit.
	if *flagIdentify {
		fmt.Println(metadata.Version)
		os.Exit(0)
	}
}
