package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/textutil/argparse"
	"github.com/mwantia/textutil/cmd"
	"github.com/mwantia/textutil/collections"
	"github.com/mwantia/textutil/corpus"
	"github.com/mwantia/textutil/geo"
	"github.com/mwantia/textutil/textfmt"
)

type StatsCommand struct{}

func (*StatsCommand) Name() string {
	return "stats"
}

func (*StatsCommand) Description() string {
	return "Count the values of a field across a corpus split"
}

func (c *StatsCommand) Run(ctx context.Context, env *cmd.Env, args []string) error {
	p := argparse.New("textdb stats", argparse.WithOutput(env.Stdout))
	help := argparse.Flag(p, argparse.Decl[bool]{
		Names: []string{"help", "h"},
		Help:  "Show this help.",
	})
	split := argparse.Option(p, argparse.Decl[string]{
		Names:   []string{"split", "s"},
		Default: "dev",
		Help:    "Corpus split to read (default %default).",
	})
	top := argparse.Option(p, argparse.Decl[int]{
		Names:   []string{"top", "t"},
		Default: 20,
		Check:   argparse.AtLeast(1).Check,
		Help:    "Number of most frequent values to show (default %default).",
	})
	exclude := argparse.MultiOption(p, argparse.Decl[string]{
		Names: []string{"exclude", "x"},
		Help:  "Values to leave out of the counts; repeatable.",
	})
	coords := argparse.Flag(p, argparse.Decl[bool]{
		Names: []string{"coords"},
		Help: `Treat the field as lat,long coordinates and report the
		       centroid and spread instead of value counts.`,
	})
	dir := argparse.Positional(p, argparse.Decl[string]{
		Names: []string{"dir"},
		Help:  "Directory holding the corpus files.",
	})
	prefix := argparse.Positional(p, argparse.Decl[string]{
		Names: []string{"prefix"},
		Help:  "Corpus file prefix.",
	})
	field := argparse.Positional(p, argparse.Decl[string]{
		Names: []string{"field"},
		Help:  "Field to analyze.",
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

	if r.Schema().FieldIndex(field.Get()) < 0 {
		return fmt.Errorf("field %q not in schema", field.Get())
	}

	if coords.Get() {
		return c.coordStats(env, r, field.Get())
	}

	excluded := make(map[string]bool)
	for _, v := range exclude.Get() {
		excluded[v] = true
	}

	counter := make(collections.Counter[string])
	for {
		doc, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if v := doc[field.Get()]; v != "" && !excluded[v] {
			counter.Add(v, 1)
		}
	}

	fmt.Fprintf(env.Stdout, "%s distinct values, %s total\n",
		textfmt.IntWithCommas(int64(len(counter))),
		textfmt.IntWithCommas(int64(counter.Total())))
	for i, item := range counter.SortedItems() {
		if i >= top.Get() {
			break
		}
		fmt.Fprintf(env.Stdout, "%s\t%s\n", textfmt.IntWithCommas(int64(item.Count)), item.Key)
	}
	return nil
}

// coordStats reports the centroid of the field's coordinates and the
// farthest document from it.
func (c *StatsCommand) coordStats(env *cmd.Env, r *corpus.Reader, field string) error {
	var coords []geo.Coord
	for {
		doc, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		raw := doc[field]
		if raw == "" {
			continue
		}
		coord, err := geo.ParseCoord(raw)
		if err != nil {
			env.Logger.Warn("Skipping %v", err)
			continue
		}
		coords = append(coords, coord)
	}
	if len(coords) == 0 {
		return fmt.Errorf("no parseable coordinates in field %q", field)
	}

	var sumLat, sumLong float64
	for _, coord := range coords {
		sumLat += coord.Lat
		sumLong += coord.Long
	}
	centroid := geo.Coord{
		Lat:  sumLat / float64(len(coords)),
		Long: sumLong / float64(len(coords)),
	}

	maxDist := 0.0
	for _, coord := range coords {
		if d := geo.SphereDist(centroid, coord); d > maxDist {
			maxDist = d
		}
	}

	fmt.Fprintf(env.Stdout, "Coordinates: %s\n", textfmt.IntWithCommas(int64(len(coords))))
	fmt.Fprintf(env.Stdout, "Centroid: %s\n", centroid)
	fmt.Fprintf(env.Stdout, "Max distance from centroid: %.1f km\n", maxDist)
	return nil
}
