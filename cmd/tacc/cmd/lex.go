package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/tacc/internal/lexer"
	"github.com/cwbudde/tacc/internal/token"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a program and print the resulting tokens",
	Long: `Lex tokenizes a program - from the named file, or from standard
input when no file is given - and prints one token per line, for
debugging the lexer in isolation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func lexScript(cmd *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Tokenizing: %s\n", filename)
		fmt.Fprintf(os.Stderr, "Input length: %d bytes\n", len(source))
		fmt.Fprintln(os.Stderr, "---")
	}

	l := lexer.New(strings.NewReader(source))
	count := 0
	for {
		tok := l.Scan()
		count++
		fmt.Printf("line %d: %s\n", l.Line(), tok.String())
		if tok.Tag() == token.EOF {
			break
		}
	}

	if verbose {
		fmt.Fprintln(os.Stderr, "---")
		fmt.Fprintf(os.Stderr, "Total tokens: %d\n", count)
	}
	return nil
}
