package builtin

import (
	"context"
	"fmt"
	"os"

	"github.com/mwantia/textutil/argparse"
	"github.com/mwantia/textutil/cmd"
	"github.com/mwantia/textutil/corpus"
)

type FetchCommand struct{}

func (*FetchCommand) Name() string {
	return "fetch"
}

func (*FetchCommand) Description() string {
	return "Download a corpus split from S3-compatible storage"
}

func (c *FetchCommand) Run(ctx context.Context, env *cmd.Env, args []string) error {
	p := argparse.New("textdb fetch", argparse.WithOutput(env.Stdout))
	help := argparse.Flag(p, argparse.Decl[bool]{
		Names: []string{"help", "h"},
		Help:  "Show this help.",
	})
	split := argparse.Option(p, argparse.Decl[string]{
		Names:   []string{"split", "s"},
		Default: "dev",
		Help:    "Corpus split to fetch (default %default).",
	})
	endpoint := argparse.Option(p, argparse.Decl[string]{
		Names: []string{"endpoint"},
		Help:  "S3 endpoint, host:port.",
	})
	bucket := argparse.Option(p, argparse.Decl[string]{
		Names: []string{"bucket"},
		Help:  "Bucket holding the corpus objects.",
	})
	remotePrefix := argparse.Option(p, argparse.Decl[string]{
		Names: []string{"remote-prefix"},
		Help:  "Object-key directory the corpus files live under.",
	})
	ssl := argparse.Flag(p, argparse.Decl[bool]{
		Names: []string{"ssl"},
		Help:  "Connect over TLS.",
	})
	dir := argparse.Positional(p, argparse.Decl[string]{
		Names: []string{"dir"},
		Help:  "Local directory to download into.",
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
	if endpoint.Get() == "" || bucket.Get() == "" {
		return fmt.Errorf("--endpoint and --bucket are required")
	}

	// Credentials come from the environment so they never land in shell
	// history
	source, err := corpus.NewRemoteSource(endpoint.Get(), bucket.Get(),
		os.Getenv("TEXTDB_ACCESS_KEY"), os.Getenv("TEXTDB_SECRET_KEY"), ssl.Get())
	if err != nil {
		return err
	}
	if err := source.Check(ctx); err != nil {
		return err
	}

	logger := env.Logger.Named("fetch")
	logger.Info("Fetching %s/%s from %s/%s", prefix.Get(), split.Get(), bucket.Get(), remotePrefix.Get())

	r, err := source.FetchCorpus(ctx, remotePrefix.Get(), dir.Get(), prefix.Get(), split.Get())
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.Files() {
		fmt.Fprintf(env.Stdout, "Fetched: %s\n", f)
	}
	return nil
}
