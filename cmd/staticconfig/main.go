// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command staticconfig validates, bootstraps and prints JSON configuration
// files against a schema of default values.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	root := newRootCmd(os.Stdout, os.Stderr, os.Exit)
	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func printBuildInfo(w io.Writer) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
