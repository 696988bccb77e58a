package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"

	"github.com/lukadante/rala/assembler"
)

// version is bumped by hand; rala has no build-stamped release process.
const version = "rala-go 0.1.0"

var (
	includeUnassembled = flag.Bool("include-unassembled", false, "Emit contigs below the member-read/length threshold instead of dropping them")
	debugPrefix        = flag.String("debug", "", "Dump intermediate graph CSV/GFA/JSON under this path prefix")
	mclGroup           = flag.Int("mcl-group", -1, "Restrict assembly to the 0-based group this index names in the group file (requires the group-file positional argument)")
	threads            = flag.Int("threads", 1, "Worker pool size for pile preprocessing")
	filterLowQuality   = flag.Bool("filter-low-quality", false, "Discard piles whose coverage median sits well below the dataset median (disabled upstream; off by default)")
	showVersion        = flag.Bool("version", false, "Print version and exit")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] <sequences-path> <overlaps-path> [<group-file>]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Assembles reads into contigs, written as FASTA to standard output.\n\nOptions:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	if *showVersion {
		fmt.Println(version)
		return
	}

	args := flag.Args()
	if len(args) < 2 || len(args) > 3 {
		usage()
		log.Fatalf("expected 2 or 3 positional arguments, got %d: %s", len(args), strings.Join(args, " "))
	}

	opts := assembler.Opts{
		SequencesPath:      args[0],
		OverlapsPath:       args[1],
		IncludeUnassembled: *includeUnassembled,
		DebugPrefix:        *debugPrefix,
		Threads:            *threads,
		FilterLowQuality:   *filterLowQuality,
	}
	if len(args) == 3 {
		if *mclGroup < 0 {
			log.Fatalf("--mcl-group is required when a group-file argument is given")
		}
		opts.GroupPath = args[2]
		opts.Group = *mclGroup
	}

	result, err := assembler.Run(opts)
	if err != nil {
		log.Panicf("%v", err)
	}

	w := os.Stdout
	for _, c := range result.Contigs {
		fmt.Fprintln(w, c.Header())
		fmt.Fprintln(w, c.Bases)
	}
	log.Debug.Printf("exiting")
}
