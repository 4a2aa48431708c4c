// Package cmd wires the textdb subcommands: a small registry plus the
// environment each command runs against.
package cmd

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/mwantia/textutil/log"
)

// Env carries the shared dependencies of a command invocation. Commands
// write their data output to Stdout; diagnostics go through Logger.
type Env struct {
	Logger *log.Logger
	Stdout io.Writer
}

// Command is one textdb subcommand.
type Command interface {
	// Name returns the subcommand identifier.
	Name() string

	// Description returns one help line.
	Description() string

	// Run parses args (everything after the subcommand name) and
	// executes.
	Run(ctx context.Context, env *Env, args []string) error
}

// Registry holds the available subcommands.
type Registry struct {
	commands map[string]Command
}

func NewRegistry(commands ...Command) *Registry {
	r := &Registry{commands: make(map[string]Command)}
	for _, c := range commands {
		r.commands[c.Name()] = c
	}
	return r
}

// Names lists the registered subcommands in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the subcommand named by args[0].
func (r *Registry) Dispatch(ctx context.Context, env *Env, args []string) error {
	if len(args) == 0 {
		r.printUsage(env.Stdout)
		return fmt.Errorf("no command given")
	}

	c, ok := r.commands[args[0]]
	if !ok {
		r.printUsage(env.Stdout)
		return fmt.Errorf("unknown command %q", args[0])
	}
	return c.Run(ctx, env, args[1:])
}

func (r *Registry) printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: textdb <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, name := range r.Names() {
		fmt.Fprintf(w, "  %-8s %s\n", name, r.commands[name].Description())
	}
}
