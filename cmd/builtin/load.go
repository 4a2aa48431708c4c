package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/textutil/argparse"
	"github.com/mwantia/textutil/cmd"
	"github.com/mwantia/textutil/corpus"
	"github.com/mwantia/textutil/progress"
	"github.com/mwantia/textutil/textfmt"
)

type LoadCommand struct{}

func (*LoadCommand) Name() string {
	return "load"
}

func (*LoadCommand) Description() string {
	return "Load a corpus split into a document store"
}

func (c *LoadCommand) Run(ctx context.Context, env *cmd.Env, args []string) error {
	p := argparse.New("textdb load", argparse.WithOutput(env.Stdout))
	help := argparse.Flag(p, argparse.Decl[bool]{
		Names: []string{"help", "h"},
		Help:  "Show this help.",
	})
	split := argparse.Option(p, argparse.Decl[string]{
		Names:   []string{"split", "s"},
		Default: "dev",
		Help:    "Corpus split to load (default %default).",
	})
	driver := argparse.Option(p, argparse.Decl[string]{
		Names:   []string{"store"},
		Default: "sqlite",
		Choices: []string{"sqlite", "postgres"},
		ChoiceAliases: map[string][]string{
			"postgres": {"pg", "postgresql"},
		},
		Help: "Store backend, one of %allchoices (default %default).",
	})
	db := argparse.Option(p, argparse.Decl[string]{
		Names: []string{"db"},
		Help: `Store target: a database file for sqlite, a connection
		       string for postgres.`,
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
	if db.Get() == "" {
		return fmt.Errorf("--db is required")
	}

	r, err := corpus.OpenCorpus(dir.Get(), prefix.Get(), split.Get())
	if err != nil {
		return err
	}
	defer r.Close()

	var store corpus.Store
	switch driver.Get() {
	case "sqlite":
		store, err = corpus.OpenSQLiteStore(db.Get(), r.Schema())
	case "postgres":
		store, err = corpus.OpenPostgresStore(ctx, db.Get(), r.Schema())
	}
	if err != nil {
		return err
	}
	defer store.Close()

	logger := env.Logger.Named("load")
	meter := progress.NewMeter(logger, "documents")
	for {
		doc, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err := store.Put(ctx, doc); err != nil {
			return err
		}
		meter.Item()
	}
	meter.Finish()

	total, err := store.Count(ctx)
	if err != nil {
		return err
	}
	logger.Info("Store now holds %s documents", textfmt.IntWithCommas(total))
	return nil
}
