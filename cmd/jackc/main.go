// Jack compiler CLI - compiles .jack class files to .vm bytecode
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/chazu/jackc/driver"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose output")
	debug := flag.Bool("debug", false, "Debug output (per-file detail)")
	tokens := flag.Bool("tokens", false, "Emit token dumps (<name>_T.xml) instead of compiling")
	outDir := flag.String("o", "", "Output directory (default: next to each source file)")
	cacheDir := flag.String("cache", "", "Compile cache directory (default: per jack.toml, or disabled)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: jackc [options] [paths...]\n\n")
		fmt.Fprintf(os.Stderr, "Compiles .jack files to .vm files. Each path may be a file or a\n")
		fmt.Fprintf(os.Stderr, "directory of class files. With no paths, the nearest jack.toml (or\n")
		fmt.Fprintf(os.Stderr, "the current directory) decides what to compile.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  jackc Main.jack        # Compile one file to Main.vm\n")
		fmt.Fprintf(os.Stderr, "  jackc ./src            # Compile every .jack file in src/\n")
		fmt.Fprintf(os.Stderr, "  jackc                  # Compile per the nearest jack.toml\n")
		fmt.Fprintf(os.Stderr, "  jackc -tokens ./src    # Dump token streams instead\n")
	}
	flag.Parse()

	verbosity := 0
	if *verbose {
		verbosity = 1
	}
	if *debug {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)

	opts := driver.Options{
		Tokens:   *tokens,
		OutDir:   *outDir,
		CacheDir: *cacheDir,
	}

	var files []string
	var err error
	if paths := flag.Args(); len(paths) > 0 {
		for _, path := range paths {
			batch, derr := driver.Discover(path)
			if derr != nil {
				err = derr
				break
			}
			files = append(files, batch...)
		}
	} else {
		files, err = driver.DiscoverFromManifest(".", &opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := driver.Run(files, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, failure := range result.Failures {
		fmt.Fprintf(os.Stderr, "Error: %v\n", failure)
	}

	if *verbose {
		fmt.Printf("Compiled %d file(s), %d failed", result.Compiled, result.Failed)
		if result.CacheHits > 0 {
			fmt.Printf(", %d from cache", result.CacheHits)
		}
		fmt.Println()
	}

	if result.Failed > 0 {
		os.Exit(1)
	}
}
