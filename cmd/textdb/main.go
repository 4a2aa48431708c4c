// Command textdb inspects, loads and fetches textdb corpora.
//
// Logging is configured through the environment so every subcommand
// behaves the same: TEXTDB_LOG_LEVEL picks the threshold and
// TEXTDB_LOG_FILE adds a rotating file sink.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mwantia/textutil/cmd"
	"github.com/mwantia/textutil/cmd/builtin"
	"github.com/mwantia/textutil/log"
)

func main() {
	var opts []log.Option
	if lvl := os.Getenv("TEXTDB_LOG_LEVEL"); lvl != "" {
		parsed, err := log.ParseLevel(lvl)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		opts = append(opts, log.WithLevel(parsed))
	}
	if file := os.Getenv("TEXTDB_LOG_FILE"); file != "" {
		opts = append(opts, log.WithFile(file, log.Rotation{}))
	}
	logger := log.New("textdb", opts...)

	registry := cmd.NewRegistry(
		&builtin.InfoCommand{},
		&builtin.CatCommand{},
		&builtin.LoadCommand{},
		&builtin.FetchCommand{},
		&builtin.StatsCommand{},
	)

	env := &cmd.Env{
		Logger: logger,
		Stdout: os.Stdout,
	}

	if err := registry.Dispatch(context.Background(), env, os.Args[1:]); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
