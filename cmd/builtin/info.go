// Package builtin holds the textdb subcommands.
package builtin

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mwantia/textutil/argparse"
	"github.com/mwantia/textutil/cmd"
	"github.com/mwantia/textutil/corpus"
	"github.com/mwantia/textutil/textfmt"
)

type InfoCommand struct{}

func (*InfoCommand) Name() string {
	return "info"
}

func (*InfoCommand) Description() string {
	return "Show the schema and document count of a corpus split"
}

func (c *InfoCommand) Run(ctx context.Context, env *cmd.Env, args []string) error {
	p := argparse.New("textdb info", argparse.WithOutput(env.Stdout))
	help := argparse.Flag(p, argparse.Decl[bool]{
		Names: []string{"help", "h"},
		Help:  "Show this help.",
	})
	split := argparse.Option(p, argparse.Decl[string]{
		Names:   []string{"split", "s"},
		Default: "dev",
		Help:    "Corpus split to inspect (default %default).",
	})
	dir := argparse.Positional(p, argparse.Decl[string]{
		Names: []string{"dir"},
		Help:  "Directory holding the corpus files.",
	})
	prefix := argparse.Positional(p, argparse.Decl[string]{
		Names: []string{"prefix"},
		Help:  "Corpus file prefix.",
	})

	if err := p.Parse(args); err != nil {
		return err
	}
	if help.Get() {
		fmt.Fprint(env.Stdout, p.Help())
		return nil
	}

	r, err := corpus.OpenCorpus(dir.Get(), prefix.Get(), split.Get())
	if err != nil {
		return err
	}
	defer r.Close()

	schema := r.Schema()
	fmt.Fprintf(env.Stdout, "Fields: %s\n", strings.Join(schema.Fields, ", "))
	for _, key := range sortedKeys(schema.Fixed) {
		fmt.Fprintf(env.Stdout, "%s: %s\n", key, schema.Fixed[key])
	}
	for _, f := range r.Files() {
		fmt.Fprintf(env.Stdout, "Data file: %s\n", f)
	}

	var count int64
	for {
		_, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		count++
	}
	fmt.Fprintf(env.Stdout, "Documents: %s\n", textfmt.IntWithCommas(count))
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
