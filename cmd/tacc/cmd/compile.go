package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/tacc/internal/cerr"
	"github.com/cwbudde/tacc/internal/config"
	"github.com/cwbudde/tacc/internal/driver"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watch bool

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a program to three-address code",
	Long: `Compile reads one program - from the named file, or from standard
input when no file is given - and writes its generated listing to
standard output.

Examples:
  tacc compile program.tac
  cat program.tac | tacc compile
  tacc compile --watch program.tac`,
	Args: cobra.MaximumNArgs(1),
	RunE: compileScript,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().BoolVar(&watch, "watch", false, "recompile on every write to the given file")
}

func compileScript(cmd *cobra.Command, args []string) error {
	if watch {
		if len(args) != 1 {
			return fmt.Errorf("--watch requires a file argument")
		}
		return watchAndCompile(args[0])
	}

	source, filename, err := readSource(args)
	if err != nil {
		return err
	}
	return runCompile(source, filename, os.Stdout)
}

func readSource(args []string) (source, filename string, err error) {
	if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return "", filename, fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		return string(content), filename, nil
	}

	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "<stdin>", fmt.Errorf("failed to read standard input: %w", err)
	}
	return string(content), "<stdin>", nil
}

// runCompile drives one compilation and prints either the listing
// (followed by the trailing newline the reference driver always wrote)
// or a diagnostic to stderr.
func runCompile(source, filename string, out io.Writer) error {
	cfg := config.Load()

	if verbose {
		fmt.Fprintf(os.Stderr, "Compiling: %s\n", filename)
		fmt.Fprintf(os.Stderr, "Input length: %d bytes\n", len(source))
		fmt.Fprintln(os.Stderr, "---")
	}

	var trace io.Writer
	if cfg.Trace {
		trace = os.Stderr
	}
	listing, err := driver.CompileTraced(strings.NewReader(source), trace)
	if err != nil {
		if ce, ok := err.(*cerr.CompileError); ok {
			fmt.Fprintln(os.Stderr, ce.Format(source, !cfg.NoColor))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return fmt.Errorf("compilation failed")
	}

	fmt.Fprintln(out, listing)
	return nil
}

// watchAndCompile recompiles file on every write, grounded on the
// fsnotify-based rebuild loop used elsewhere in the retrieved pack: here
// simplified to a single watched file rather than a recursive directory
// walk, since a compilation unit is always exactly one file.
func watchAndCompile(file string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(file)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	recompile := func() {
		source, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", file, err)
			return
		}
		if err := runCompile(string(source), file, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	recompile()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(file) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			recompile()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}
