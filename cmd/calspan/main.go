package main

import (
	"fmt"
	"os"

	"github.com/roach88/calspan/calendar"
	"github.com/roach88/calspan/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand(calendar.SystemClock{})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
