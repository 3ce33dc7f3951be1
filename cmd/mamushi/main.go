package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"mamushi/internal/prof"
	"mamushi/internal/version"
)

// exitError carries a process exit status out of a command.
type exitError struct {
	code int
}

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// profiler holds the profiling session started by the root command so run
// can stop it once the command returns, whatever its exit status.
type profiler struct {
	session *prof.Session
}

// newRootCmd builds the command tree. The root command itself formats.
func newRootCmd(p *profiler) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mamushi [flags] [src...]",
		Short: "Vyper code formatter",
		Long: `mamushi rewrites Vyper source files into one canonical layout.
With no paths it formats the current directory.`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupOutput(cmd, args); err != nil {
				return err
			}
			return p.start(cmd)
		},
		RunE:              runFormat,
	}

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "don't emit non-error messages to stderr")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "also report unchanged files and failure details")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to `file`")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to `file` on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a runtime trace to `file`")

	addFormatFlags(rootCmd)

	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	p := &profiler{}
	rootCmd := newRootCmd(p)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	err := rootCmd.Execute()
	if stopErr := p.session.Stop(); stopErr != nil {
		fmt.Fprintf(stderr, "%s %v\n", color.New(color.FgYellow).Sprint("warning:"), stopErr)
	}
	if err == nil {
		return 0
	}
	var ee exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintf(rootCmd.ErrOrStderr(), "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)
	return 1
}

// setupOutput resolves --color once for the whole process.
func setupOutput(cmd *cobra.Command, _ []string) error {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stderr)
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
	return nil
}

func (p *profiler) start(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	var opts prof.Options
	var err error
	if opts.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return err
	}
	if opts.Mem, err = flags.GetString("mem-profile"); err != nil {
		return err
	}
	if opts.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return err
	}
	if opts == (prof.Options{}) {
		return nil
	}
	p.session, err = prof.Start(opts)
	return err
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
