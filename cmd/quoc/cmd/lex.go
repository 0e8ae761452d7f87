package cmd

import (
	"fmt"
	"os"

	"github.com/quo-lang/quoc/internal/lexer"
	"github.com/spf13/cobra"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Quo file or expression",
	Long: `Tokenize (lex) a Quo program and print the resulting tokens.

If no file is given, reads from stdin. Use -e to tokenize inline code.

Examples:
  quoc lex script.quo
  quoc lex -e "x >= 10"`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexSource,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
}

func lexSource(cmd *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Fprintf(os.Stderr, "Tokenizing: %s\n", filename)
	}

	l := lexer.New(input, filename)
	for !l.Done() {
		tok, err := l.Next()
		if err != nil {
			return err
		}
		if showPos {
			fmt.Printf("%-18s %q @%s\n", tok.Type, tok.Literal, tok.Pos)
		} else {
			fmt.Printf("%-18s %q\n", tok.Type, tok.Literal)
		}
	}
	return nil
}
