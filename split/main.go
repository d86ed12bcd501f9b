// Command split keeps track of the expenses shared by a group and tells who owes whom.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/etnz/splitter/cmd"
	"github.com/google/subcommands"
)

func main() {
	cfg, err := cmd.ParseEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
	// exits when called by the shell for completion.
	cmd.Completion(cfg).Complete("split")

	commander := subcommands.NewCommander(flag.CommandLine, "split")
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	if err := cmd.ApplyConfig(flag.CommandLine, cfg); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
	flag.Parse()

	log.SetFlags(0)
	if !*cmd.Verbose {
		log.SetOutput(io.Discard)
	}

	if name := flag.Arg(0); name != "" && !cmd.IsCommand(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
