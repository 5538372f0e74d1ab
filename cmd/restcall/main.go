// Command restcall issues REST requests from the command line.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/kbukum/resttools/internal/cli"
)

var (
	executeCmd            = cli.Execute
	mapExitCode           = cli.ExitCode
	stderr      io.Writer = os.Stderr
	terminate             = os.Exit
)

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := executeCmd(ctx, args); err != nil {
		_, _ = fmt.Fprintf(stderr, "restcall: %v\n", err)
		return mapExitCode(err)
	}
	return 0
}

func main() {
	terminate(run(os.Args[1:]))
}
