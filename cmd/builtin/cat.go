package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/textutil/argparse"
	"github.com/mwantia/textutil/cmd"
	"github.com/mwantia/textutil/corpus"
	"github.com/mwantia/textutil/progress"
)

type CatCommand struct{}

func (*CatCommand) Name() string {
	return "cat"
}

func (*CatCommand) Description() string {
	return "Print the documents of a corpus split"
}

func (c *CatCommand) Run(ctx context.Context, env *cmd.Env, args []string) error {
	p := argparse.New("textdb cat", argparse.WithOutput(env.Stdout))
	help := argparse.Flag(p, argparse.Decl[bool]{
		Names: []string{"help", "h"},
		Help:  "Show this help.",
	})
	split := argparse.Option(p, argparse.Decl[string]{
		Names:   []string{"split", "s"},
		Default: "dev",
		Help:    "Corpus split to read (default %default).",
	})
	format := argparse.Option(p, argparse.Decl[string]{
		Names:   []string{"format"},
		Default: "tsv",
		Choices: []string{"tsv", "fields"},
		ChoiceAliases: map[string][]string{
			"tsv":    {"tab", "row"},
			"fields": {"kv"},
		},
		Help: "Output format, one of %allchoices (default %default).",
	})
	limit := argparse.Option(p, argparse.Decl[int]{
		Names:   []string{"limit", "n"},
		Default: 0,
		Check:   argparse.AtLeast(0).Check,
		Help:    "Stop after this many documents; 0 means no limit.",
	})
	dir := argparse.Positional(p, argparse.Decl[string]{
		Names: []string{"dir"},
		Help:  "Directory holding the corpus files.",
	})
	prefix := argparse.Positional(p, argparse.Decl[string]{
		Names: []string{"prefix"},
		Help:  "Corpus file prefix.",
	})
	fields := argparse.MultiPositional(p, argparse.Decl[string]{
		Names:    []string{"field"},
		Optional: true,
		Help:     "Fields to print; all schema fields when omitted.",
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

	selected := fields.Get()
	if len(selected) == 0 {
		selected = r.Schema().Fields
	}
	for _, f := range selected {
		if r.Schema().FieldIndex(f) < 0 {
			return fmt.Errorf("field %q not in schema", f)
		}
	}

	meter := progress.NewMeter(env.Logger, "documents")
	for {
		doc, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch format.Get() {
		case "tsv":
			for i, f := range selected {
				if i > 0 {
					fmt.Fprint(env.Stdout, "\t")
				}
				fmt.Fprint(env.Stdout, corpus.EncodeField(doc[f]))
			}
			fmt.Fprintln(env.Stdout)
		case "fields":
			for _, f := range selected {
				fmt.Fprintf(env.Stdout, "%s: %s\n", f, doc[f])
			}
			fmt.Fprintln(env.Stdout)
		}

		meter.Item()
		if limit.Get() > 0 && meter.Count() >= int64(limit.Get()) {
			break
		}
	}
	meter.Finish()
	return nil
}
