package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/quo-lang/quoc/internal/config"
	"github.com/quo-lang/quoc/internal/cpptrans"
	"github.com/quo-lang/quoc/internal/driver"
	"github.com/quo-lang/quoc/internal/parser"
	"github.com/quo-lang/quoc/internal/qerrors"
	"github.com/spf13/cobra"
)

var (
	outputFile     string
	compileVerbose bool
)

var compileCmd = &cobra.Command{
	Use:   "compile <file.quo>",
	Short: "Compile a Quo file to a shared object",
	Long: `Compile a Quo program: lex, parse, translate to C++, then invoke an
external C++ compiler (CXX env var, else c++/g++/clang++ on PATH) to
produce a shared object.

An optional quoc.yaml in the working directory configures the compiler
path and extra include directories.

Examples:
  quoc compile prog.quo
  quoc compile prog.quo -o prog.so`,
	Args: cobra.ExactArgs(1),
	RunE: compileSource,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output shared-object path (default: a temp file)")
	compileCmd.Flags().BoolVarP(&compileVerbose, "verbose", "v", false, "verbose output")
}

func compileSource(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	input := string(content)

	if compileVerbose {
		fmt.Fprintf(os.Stderr, "Compiling %s...\n", filename)
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

	if compileVerbose {
		fmt.Fprintln(os.Stderr, "Translation successful")
	}

	cfg, err := config.Load("quoc.yaml")
	if err != nil {
		return fmt.Errorf("failed to read quoc.yaml: %w", err)
	}

	d := driver.New(cfg)
	outPath, err := d.Compile(cpptrans.Wrap(cppSource), driver.CompileOptions{OutputPath: outputFile})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		// A compiler that ran and failed sets the process exit code.
		var toolErr *qerrors.ExternalToolError
		if errors.As(err, &toolErr) && !toolErr.Missing && toolErr.ExitCode > 0 {
			os.Exit(toolErr.ExitCode)
		}
		return fmt.Errorf("compilation failed")
	}

	fmt.Printf("Compiled %s -> %s\n", filename, outPath)
	return nil
}
