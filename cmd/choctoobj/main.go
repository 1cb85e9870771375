// Command choctoobj converts a Chocks Away / Extra Missions object bank
// (an index file plus a model file) into a Wavefront OBJ file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	cli "github.com/urfave/cli/v2"

	"github.com/chocksaway/choctoobj/internal/mesh"
	"github.com/chocksaway/choctoobj/internal/parser"
	"github.com/chocksaway/choctoobj/internal/streamio"
)

const versionString = "1.0"

func main() {
	app := cli.NewApp()
	app.Name = "choctoobj"
	app.Usage = "Convert a Chocks Away object bank into Wavefront OBJ"
	app.ArgsUsage = "model [index] [outfile]"
	app.Flags = []cli.Flag{
		&cli.IntFlag{Name: "first", Value: -1, Usage: "first object index to convert"},
		&cli.IntFlag{Name: "last", Value: -1, Usage: "last object index to convert"},
		&cli.StringFlag{Name: "name", Usage: "convert only the named object"},
		&cli.StringFlag{Name: "index", Usage: "index file (overrides positional argument)"},
		&cli.StringFlag{Name: "outfile", Usage: "output file (overrides positional argument, default stdout)"},
		&cli.StringFlag{Name: "mtllib", Value: "sf3k.mtl", Usage: "material library name written into the OBJ"},
		&cli.Int64Flag{Name: "offset", Usage: "address below which an object is treated as padding"},
		&cli.Float64Flag{Name: "thick", Usage: "thickness to give 2-sided line primitives and thick procedural shapes"},
		&cli.BoolFlag{Name: "extra", Usage: "resolve object names under the Extra Missions scheme"},
		&cli.BoolFlag{Name: "list", Usage: "list object names and headers only, write no OBJ"},
		&cli.BoolFlag{Name: "summary", Usage: "print only a count of the object addresses in the index"},
		&cli.BoolFlag{Name: "human", Usage: "name materials by hue/tint instead of riscos_N"},
		&cli.BoolFlag{Name: "false", Usage: "assign a synthetic colour per primitive, stepping by 4 and wrapping at 256"},
		&cli.BoolFlag{Name: "simple", Usage: "decode the simplified vertex/primitive counts"},
		&cli.BoolFlag{Name: "unused", Usage: "keep vertices that no primitive references"},
		&cli.BoolFlag{Name: "duplicate", Usage: "keep duplicate vertices instead of culling them"},
		&cli.BoolFlag{Name: "negative", Usage: "emit negative (relative) vertex indices"},
		&cli.BoolFlag{Name: "clip", Usage: "clip coplanar overlapping polygons"},
		&cli.BoolFlag{Name: "flip", Usage: "make every primitive of an object lying entirely in z=0 face +Z"},
		&cli.BoolFlag{Name: "fans", Usage: "decompose polygons into triangle fans"},
		&cli.BoolFlag{Name: "strips", Usage: "decompose polygons into triangle strips"},
		&cli.BoolFlag{Name: "raw", Usage: "treat model/index files as uncompressed"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"debug"}, Usage: "print diagnostic warnings to stderr"},
		&cli.BoolFlag{Name: "time", Usage: "print elapsed conversion time to stderr"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		if ec, ok := err.(cli.ExitCoder); ok {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(ec.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	first := c.Int("first")
	last := c.Int("last")
	if first >= 0 && last >= 0 && first > last {
		return cli.Exit("-first cannot be greater than -last", 1)
	}
	if c.Bool("fans") && c.Bool("strips") {
		return cli.Exit("-fans and -strips are mutually exclusive", 1)
	}

	args := c.Args()
	modelFile := args.First()
	if modelFile == "" {
		return cli.Exit("a model file is required", 1)
	}

	indexFile := c.String("index")
	outFile := c.String("outfile")
	rest := args.Tail()
	if indexFile == "" && len(rest) > 0 {
		indexFile = rest[0]
		rest = rest[1:]
	}
	if outFile == "" && len(rest) > 0 {
		outFile = rest[0]
	}
	if indexFile == "" {
		return cli.Exit("an index file is required", 1)
	}

	listOrSummary := c.Bool("list") || c.Bool("summary")
	if listOrSummary && outFile != "" {
		return cli.Exit("-outfile may not be used with -list or -summary", 1)
	}
	if outFile == "" && (c.Bool("verbose") || c.Bool("time")) {
		return cli.Exit("-verbose and -time require -outfile (stdout is reserved for OBJ text)", 1)
	}

	flags := parser.Flags(0)
	set := func(want bool, f parser.Flags) {
		if want {
			flags |= f
		}
	}
	set(c.Bool("list"), parser.FlagList)
	set(c.Bool("summary"), parser.FlagSummary)
	set(c.Bool("simple"), parser.FlagSimple)
	set(c.Bool("unused"), parser.FlagUnused)
	set(c.Bool("duplicate"), parser.FlagDuplicate)
	set(c.Bool("negative"), parser.FlagNegativeIndices)
	set(c.Bool("clip"), parser.FlagClipPolygons)
	set(c.Bool("flip"), parser.FlagFlipBackfacing)
	set(c.Bool("fans"), parser.FlagTriangleFans)
	set(c.Bool("strips"), parser.FlagTriangleStrips)
	set(c.Bool("human"), parser.FlagHumanReadable)
	set(c.Bool("false"), parser.FlagFalseColour)
	set(c.Bool("extra"), parser.FlagExtraMissions)
	set(c.Bool("verbose"), parser.FlagVerbose)

	model, err := os.Open(modelFile)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer model.Close()

	index, err := os.Open(indexFile)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer index.Close()

	var out io.Writer = os.Stdout
	var outf *os.File
	if outFile != "" {
		outf, err = os.Create(outFile)
		if err != nil {
			return cli.Exit(err, 1)
		}
		out = outf
	}

	var warn func(string)
	if flags.Has(parser.FlagVerbose) {
		warn = func(msg string) { fmt.Fprintln(os.Stderr, msg) }
	}

	modelReader, err := wrapReader(model, c.Bool("raw"))
	if err != nil {
		return cli.Exit(err, 1)
	}
	indexReader, err := wrapReader(index, c.Bool("raw"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	opts := parser.Options{
		Flags:         flags,
		MTLFile:       c.String("mtllib"),
		VersionString: versionString,
		FirstIndex:    first,
		LastIndex:     last,
		Name:          c.String("name"),
		DataStart:     c.Int64("offset"),
		Warn:          warn,
	}
	if c.IsSet("thick") {
		opts.Thick = mesh.Coord(c.Float64("thick"))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		if _, ok := <-sig; ok {
			cancel()
		}
	}()
	defer signal.Stop(sig)

	start := time.Now()
	count, err := parser.Convert(ctx, indexReader, modelReader, out, opts)
	if err != nil {
		if outf != nil {
			outf.Close()
			if !c.Bool("verbose") {
				os.Remove(outFile)
			}
		}
		return cli.Exit(err, 1)
	}

	if outf != nil {
		if err := outf.Close(); err != nil {
			return cli.Exit(err, 1)
		}
	}

	if c.Bool("summary") {
		suffix := "es"
		if count == 1 {
			suffix = ""
		}
		fmt.Fprintf(os.Stderr, "\nFound %d object address%s\n", count, suffix)
	}
	if c.Bool("time") {
		fmt.Fprintf(os.Stderr, "%s elapsed\n", time.Since(start))
	}
	return nil
}

func wrapReader(f *os.File, raw bool) (streamio.Reader, error) {
	if raw {
		return streamio.NewRawReader(f), nil
	}
	return streamio.NewGKeyReader(9, f)
}
