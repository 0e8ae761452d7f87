// Command quoc is the Quo compiler front end: lex, parse, translate to
// C++, and (given a toolchain) compile to a shared object.
package main

import (
	"fmt"
	"os"

	"github.com/quo-lang/quoc/cmd/quoc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
