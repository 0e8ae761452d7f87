// Package driver orchestrates the external C++ compiler: writing
// translated source to a temp file, discovering a toolchain, and
// invoking it to completion, per spec §6.1.
package driver

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/quo-lang/quoc/internal/config"
	"github.com/quo-lang/quoc/internal/qerrors"
)

// defaultCompilers is the search order used when neither CXX nor a
// config cxx_path is set.
var defaultCompilers = []string{"c++", "g++", "clang++"}

// Driver compiles translated C++ source with an external toolchain.
type Driver struct {
	Config config.Config
}

// New returns a Driver using cfg for compiler discovery and include
// paths.
func New(cfg config.Config) *Driver {
	return &Driver{Config: cfg}
}

// CompilerPath resolves which C++ compiler to invoke: the CXX
// environment variable, then the config's cxx_path, then the first of
// c++/g++/clang++ found on PATH. It returns ExternalToolError if none is
// found.
func (d *Driver) CompilerPath() (string, error) {
	if path := d.Config.ResolvedCXXPath(); path != "" {
		return path, nil
	}
	for _, name := range defaultCompilers {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", &qerrors.ExternalToolError{Tool: "c++/g++/clang++", Missing: true}
}

// CompileOptions adjusts how Compile invokes the discovered compiler.
type CompileOptions struct {
	// OutputPath is the path of the compiled shared object. Defaults to
	// a temp file ending in ".so" when empty.
	OutputPath string
}

// Compile writes cppSource to a temp ".cpp" file and invokes the
// discovered compiler with "-shared -fPIC -std=c++17" plus any "-I"
// directories from the driver's Config, blocking until the subprocess
// exits. It returns the path to the produced shared object.
func (d *Driver) Compile(cppSource string, opts CompileOptions) (string, error) {
	compiler, err := d.CompilerPath()
	if err != nil {
		return "", err
	}

	outDir := d.Config.OutDir
	if outDir == "" {
		outDir = os.TempDir()
	}
	srcFile, err := os.CreateTemp(outDir, "quo-*.cpp")
	if err != nil {
		return "", err
	}
	defer os.Remove(srcFile.Name())
	if _, err := srcFile.WriteString(cppSource); err != nil {
		srcFile.Close()
		return "", err
	}
	if err := srcFile.Close(); err != nil {
		return "", err
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = srcFile.Name() + ".so"
	}

	args := []string{"-shared", "-fPIC", "-std=c++17"}
	for _, dir := range d.Config.IncludeDirs {
		args = append(args, "-I"+dir)
	}
	args = append(args, srcFile.Name(), "-o", outputPath)

	cmd := exec.Command(compiler, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return "", &qerrors.ExternalToolError{
			Tool:     filepath.Base(compiler),
			ExitCode: exitCode,
			Stderr:   stderr.String(),
		}
	}
	return outputPath, nil
}
