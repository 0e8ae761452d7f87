package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/quo-lang/quoc/internal/ast"
	"github.com/quo-lang/quoc/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Quo source and print the serialized AST",
	Long: `Parse Quo source code and print the Abstract Syntax Tree as JSON.

If no file is given, reads from stdin. Use -e to parse inline code.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	mod, err := parser.ParseModule(newLexTokenSource(input, filename), filename, input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("parsing failed")
	}

	data, err := json.MarshalIndent(ast.Serialize(mod), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize AST: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
