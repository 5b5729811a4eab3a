// Command zedc compiles zed source to x86_64 System V assembly.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zed-coding/zedc/internal/compiler"
	"github.com/zed-coding/zedc/internal/logging"
)

var (
	outputPath string
	stdlibPath string
	noColor    bool
	verbose    bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zedc <input.zed> -o <output.asm>",
		Short: "Compile zed source to x86_64 assembly",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompile,
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output assembly path (\"-\" for stdout)")
	_ = cmd.MarkFlagRequired("output")
	cmd.Flags().StringVar(&stdlibPath, "stdlib-path", "", "override the standard library root used to resolve std/ includes")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runCompile(cmd *cobra.Command, args []string) error {
	log := logging.New(verbose)

	color := !noColor
	if fi, statErr := os.Stderr.Stat(); statErr != nil || fi.Mode()&os.ModeCharDevice == 0 {
		color = false
	}

	asm, err := compiler.Compile(compiler.Options{
		InputPath:  args[0],
		StdlibPath: stdlibPath,
		Color:      color,
		Log:        log,
	})
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), err.Error())
		os.Exit(1)
	}

	if err := compiler.WriteOutput(outputPath, asm); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
