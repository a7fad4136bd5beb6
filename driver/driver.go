// Package driver discovers class files, compiles them, and writes the
// output next to each source. Files compile independently: one bad file
// never blocks the rest of a run.
package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/chazu/jackc/cache"
	"github.com/chazu/jackc/compiler"
	"github.com/chazu/jackc/manifest"
)

var log = commonlog.GetLogger("jackc.driver")

// Options configures a compile run.
type Options struct {
	// Tokens switches the run to token-dump mode: each file produces a
	// <name>T.xml dump instead of compiled output.
	Tokens bool

	// OutDir receives the output files. Empty means next to each source.
	OutDir string

	// CacheDir enables the compile cache when non-empty.
	CacheDir string
}

// FileError records one file that failed to compile.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Result summarizes a compile run. Failures carries each failing file's
// diagnostic so callers can report them directly; the log alone is not a
// reliable channel for them, since log backends may buffer.
type Result struct {
	Compiled  int
	Failed    int
	CacheHits int
	Failures  []*FileError
}

// Extension of source files the driver looks for.
const Extension = ".jack"

// Discover expands a path into the class files it names: a file stands for
// itself, a directory for every class file directly inside it, sorted.
func Discover(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot stat %s: %w", path, err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read dir %s: %w", path, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), Extension) {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files in %s", Extension, path)
	}
	return files, nil
}

// DiscoverFromManifest resolves the file set for a run with no path
// arguments: the nearest jack.toml wins, falling back to the working
// directory. The manifest may also contribute output and cache settings to
// opts.
func DiscoverFromManifest(startDir string, opts *Options) ([]string, error) {
	m, err := manifest.FindAndLoad(startDir)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return Discover(startDir)
	}

	log.Infof("using manifest in %s", m.Dir)
	if opts.OutDir == "" && m.Output.Dir != "" {
		opts.OutDir = filepath.Join(m.Dir, m.Output.Dir)
	}
	if m.Output.Tokens {
		opts.Tokens = true
	}
	if opts.CacheDir == "" && m.Cache.Enabled {
		opts.CacheDir = m.CacheDir()
	}

	files, err := m.SourceFiles()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files under %s", m.Source.Extension, m.Dir)
	}
	return files, nil
}

// Run compiles every file, continuing past per-file failures. The returned
// error reports only run-level problems; per-file diagnostics go to the log
// and are tallied in the result.
func Run(files []string, opts Options) (Result, error) {
	var result Result

	var store *cache.Store
	if opts.CacheDir != "" && !opts.Tokens {
		var err error
		store, err = cache.Open(opts.CacheDir)
		if err != nil {
			return result, err
		}
	}

	if opts.OutDir != "" {
		if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
			return result, fmt.Errorf("cannot create output dir %s: %w", opts.OutDir, err)
		}
	}

	for _, file := range files {
		err := compileFile(file, store, opts, &result)
		if err != nil {
			log.Errorf("%s: %s", file, err)
			result.Failed++
			result.Failures = append(result.Failures, &FileError{Path: file, Err: err})
			continue
		}
		result.Compiled++
	}

	return result, nil
}

// outPath places the output file: same base name, new suffix, either next
// to the source or under the configured output dir.
func outPath(source, suffix, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(source), Extension) + suffix
	if outDir != "" {
		return filepath.Join(outDir, base)
	}
	return filepath.Join(filepath.Dir(source), base)
}

func compileFile(path string, store *cache.Store, opts Options, result *Result) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	source := string(data)

	if opts.Tokens {
		dump, err := compiler.TokensXML(source)
		if err != nil {
			return err
		}
		target := outPath(path, "_T.xml", opts.OutDir)
		log.Debugf("writing %s", target)
		return os.WriteFile(target, []byte(dump), 0644)
	}

	target := outPath(path, ".vm", opts.OutDir)

	if store != nil {
		key := cache.Key(source)
		entry, err := store.Get(key)
		if err != nil {
			return err
		}
		if entry != nil {
			log.Debugf("cache hit for %s", path)
			result.CacheHits++
			return writeInstructions(target, entry.Instructions)
		}

		mod, err := compiler.Compile(source)
		if err != nil {
			return err
		}
		if err := store.Put(&cache.Entry{
			Hash:         key,
			ClassName:    mod.ClassName,
			Instructions: mod.Instructions,
		}); err != nil {
			// A failed cache write only costs the next run a recompile.
			log.Warningf("cache write for %s: %s", path, err)
		}
		return writeInstructions(target, mod.Instructions)
	}

	mod, err := compiler.Compile(source)
	if err != nil {
		return err
	}
	log.Debugf("compiled %s (%d instructions)", mod.ClassName, len(mod.Instructions))
	return writeInstructions(target, mod.Instructions)
}

func writeInstructions(target string, instructions []string) error {
	var b strings.Builder
	for _, ins := range instructions {
		b.WriteString(ins)
		b.WriteByte('\n')
	}
	return os.WriteFile(target, []byte(b.String()), 0644)
}
