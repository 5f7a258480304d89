package main

import (
	"os"

	"github.com/thesavant42/peoplesome-ng/internal/cli"
	"github.com/thesavant42/peoplesome-ng/internal/ui"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}
