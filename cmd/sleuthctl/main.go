// sleuthctl evaluates suspects against crimes from the command line.
//
// Usage:
//
//	sleuthctl query SUSPECT CRIME [--corpus=<path>] [--strict]
//	sleuthctl investigate [--corpus=<path>] [--markdown]
//	sleuthctl facts SUSPECT [--corpus=<path>]
//	sleuthctl rules [--corpus=<path>]
//
// The corpus path defaults to $SLEUTH_CORPUS, which may be set in a .env file.
// The built-in corpus is used when neither is set.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
