package cmd

import (
	"fmt"
	"os"

	"github.com/quo-lang/quoc/internal/cpptrans"
	"github.com/quo-lang/quoc/internal/parser"
	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate [file]",
	Short: "Translate Quo source to C++",
	Long: `Parse Quo source code and print the lowered C++ source text.

If no file is given, reads from stdin. Use -e to translate inline code.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "translate inline code instead of reading from file")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	mod, err := parser.ParseModule(newLexTokenSource(input, filename), filename, input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("parsing failed")
	}

	cppSource, err := cpptrans.New().Translate(mod)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("translation failed")
	}

	fmt.Println(cppSource)
	return nil
}
