// Command ldif2csv converts an LDIF directory export into delimited
// tabular text (csv-like), JSON or TOON.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kjk/ldif2csv/atomicfile"
	"github.com/kjk/ldif2csv/ldif"
	"github.com/kjk/ldif2csv/runlog"
	"github.com/kjk/ldif2csv/source"
	"github.com/kjk/ldif2csv/tabular"
)

var version = "1.1.0"

var (
	flgOutput    = flag.String("o", "", "write output to `file` (default: stdout)")
	flgLog       = flag.String("l", "", "write parse warnings and events to log `file`")
	flgFieldSep  = flag.String("f", ";", "field separator, single `char`")
	flgMultiSep  = flag.String("m", ",", "multi-value separator, single `char`")
	flgQuote     = flag.String("d", `"`, "quote `char` wrapped around every cell")
	flgColumns   = flag.String("H", "", "explicit comma-separated column `names` (default: auto-discover)")
	flgConfig    = flag.String("c", "", "ini config `file` with defaults and credentials")
	flgJSON      = flag.Bool("j", false, "output JSON instead of delimited text")
	flgTOON      = flag.Bool("t", false, "output TOON instead of delimited text")
	flgFetchURLs = flag.Bool("fetch-urls", false, "resolve 'attr:< url' value references")
	flgMax       = flag.Int("max", 0, "stop after `n` records (0: no limit)")
	flgIgnore    = flag.String("ignore", "", "comma-separated attribute `names` to drop")
	flgVersion   = flag.Bool("version", false, "print version and exit")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: ldif2csv [options] <input>\n\n")
	fmt.Fprintf(os.Stderr, "<input> is an LDIF file ('-' for stdin, .gz/.bz2/.zst/.br are\n")
	fmt.Fprintf(os.Stderr, "decompressed) or a http(s)://, s3:// or sftp:// location.\n\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ldif2csv: "+format+"\n", args...)
	os.Exit(1)
}

func splitNames(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// flags beat config file values, config file values beat built-ins
func resolveFormat(cfg *fileConfig) (tabular.Format, error) {
	fieldSep, multiSep, quote := *flgFieldSep, *flgMultiSep, *flgQuote
	if cfg != nil {
		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) {
			set[f.Name] = true
		})
		if !set["f"] && cfg.fieldSep != "" {
			fieldSep = cfg.fieldSep
		}
		if !set["m"] && cfg.multiSep != "" {
			multiSep = cfg.multiSep
		}
		if !set["d"] && cfg.quote != "" {
			quote = cfg.quote
		}
	}
	return tabular.NewFormat(fieldSep, multiSep, quote)
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *flgVersion {
		fmt.Printf("ldif2csv %s\n", version)
		return
	}
	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	if *flgJSON && *flgTOON {
		fatalf("-j and -t are mutually exclusive")
	}

	var cfg *fileConfig
	if *flgConfig != "" {
		var err error
		cfg, err = loadConfig(*flgConfig)
		if err != nil {
			fatalf("reading config file failed: %s", err)
		}
	}

	format, err := resolveFormat(cfg)
	if err != nil {
		fatalf("%s", err)
	}

	var lg *runlog.File
	if *flgLog != "" {
		lg, err = runlog.New(*flgLog)
		if err != nil {
			fatalf("opening log file failed: %s", err)
		}
		defer lg.Close()
	}

	ctx := context.Background()
	input := flag.Arg(0)

	var srcCfg *source.Config
	if cfg != nil {
		srcCfg = &cfg.src
	}
	in, err := source.Open(ctx, input, srcCfg)
	if err != nil {
		fatalf("opening input failed: %s", err)
	}
	defer in.Close()

	opts := ldif.Options{
		Warnf:       lg.Logf,
		MaxRecords:  *flgMax,
		IgnoreAttrs: splitNames(*flgIgnore),
	}
	if *flgFetchURLs {
		opts.FetchValue = func(url string) (string, error) {
			return source.FetchValue(ctx, url)
		}
	}

	records, err := ldif.ReadAll(in, opts)
	if err != nil {
		fatalf("reading '%s' failed: %s", input, err)
	}
	cols := tabular.Columns(records, splitNames(*flgColumns))

	var out io.Writer = os.Stdout
	var outFile *atomicfile.File
	if *flgOutput != "" {
		outFile, err = atomicfile.New(*flgOutput)
		if err != nil {
			fatalf("opening output failed: %s", err)
		}
		defer outFile.Cancel()
		out = outFile
	}

	err = emit(out, records, cols, format)
	if err != nil {
		fatalf("writing output failed: %s", err)
	}
	if outFile != nil {
		err = outFile.Close()
		if err != nil {
			fatalf("writing '%s' failed: %s", *flgOutput, err)
		}
	}

	lg.Event("done",
		"input", input,
		"records", strconv.Itoa(len(records)),
		"columns", strconv.Itoa(len(cols)),
	)
}

func emit(w io.Writer, records []*ldif.Record, cols []string, format tabular.Format) error {
	if *flgJSON {
		return tabular.WriteJSON(w, records, cols, format.MultiSep)
	}
	if *flgTOON {
		return tabular.WriteTOON(w, records, cols, format.MultiSep)
	}
	tw := tabular.NewWriter(w, format)
	if err := tw.WriteHeader(cols); err != nil {
		return err
	}
	for _, rec := range records {
		if err := tw.WriteRecord(rec, cols); err != nil {
			return err
		}
	}
	return nil
}
