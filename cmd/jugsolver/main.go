package main

import (
	"os"

	"github.com/pdrpinto/waterjug/cmd/jugsolver/internal/cmd"
	"github.com/pdrpinto/waterjug/cmd/jugsolver/prompt"
	"github.com/pdrpinto/waterjug/cmd/jugsolver/serve"
	"github.com/pdrpinto/waterjug/cmd/jugsolver/solve"
	"github.com/pdrpinto/waterjug/cmd/jugsolver/trace"
)

func main() {
	exitCode := cmd.Run(os.Args, os.Stdin, os.Stdout, os.Stderr, []cmd.CommandBuilder{
		solve.Command,
		prompt.Command,
		trace.Command,
		serve.Command,
	})

	os.Exit(exitCode)
}
