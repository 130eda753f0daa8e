// Command argline parses command lines with a configurable parser and prints
// the classified arguments. A TOML config file describes the parser settings
// and the matcher registry; without one every argument matches.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ferrith/argline"
	"github.com/ferrith/argline/split"
	"github.com/ferrith/argline/util"
)

var Version = "0.3.0"

type appFlags struct {
	configPath string
	verbose    bool
	noColor    bool
	preSplit   bool
}

func main() {
	flags := &appFlags{}

	root := &cobra.Command{
		Use:     "argline",
		Short:   "Parse and classify command lines",
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging(flags.verbose)
			if flags.noColor {
				color.NoColor = true
			}
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "TOML config file describing the parser and its matchers")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	parseCmd := &cobra.Command{
		Use:   "parse [line]",
		Short: "Parse a command line and print its classified arguments",
		Long: "Parse a command line and print its classified arguments. The line is " +
			"taken from the command arguments, or from stdin when none are given.",
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			line, err := readLine(cmdArgs, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runParse(flags, line, cmd.OutOrStdout())
		},
	}
	parseCmd.Flags().BoolVar(&flags.preSplit, "pre-split", false, "split the line like a shell first, then parse the pieces")

	splitCmd := &cobra.Command{
		Use:   "split [line]",
		Short: "Split a command line into arguments like a shell, without classifying",
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			line, err := readLine(cmdArgs, cmd.InOrStdin())
			if err != nil {
				return err
			}
			pieces, err := split.Split(line)
			if err != nil {
				return err
			}
			for _, piece := range pieces {
				fmt.Fprintln(cmd.OutOrStdout(), piece)
			}
			return nil
		},
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively parse lines and inspect the results",
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			return runRepl(flags, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.AddCommand(parseCmd, splitCmd, replCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func initLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func buildParser(flags *appFlags) (*argline.Parser[string, string], error) {
	cfg, err := LoadOptionalConfig(flags.configPath)
	if err != nil {
		return nil, err
	}
	parser, err := cfg.BuildParser()
	if err != nil {
		return nil, err
	}
	slog.Debug("parser configured",
		"config", flags.configPath,
		"matchers", len(parser.Matchers()))
	return parser, nil
}

func readLine(cmdArgs []string, in io.Reader) (string, error) {
	if len(cmdArgs) > 0 {
		return strings.Join(cmdArgs, " "), nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func runParse(flags *appFlags, line string, out io.Writer) error {
	parser, err := buildParser(flags)
	if err != nil {
		return err
	}

	var args argline.Args[string, string]
	if flags.preSplit {
		pieces, err := split.Split(line)
		if err != nil {
			return err
		}
		slog.Debug("line split", "pieces", len(pieces))
		args, err = parser.ParseArgs(pieces)
		if err != nil {
			return err
		}
	} else {
		args, err = parser.ParseLine(line)
		if err != nil {
			return err
		}
	}

	printArgs(out, args)
	return nil
}

var (
	binaryColor = color.New(color.FgCyan, color.Bold)
	optionColor = color.New(color.FgGreen)
	paramColor  = color.New(color.FgYellow)
	metaColor   = color.New(color.Faint)
)

// defaultOutputWidth is used when stdout is not a terminal.
const defaultOutputWidth = 100

func printArgs(out io.Writer, args argline.Args[string, string]) {
	// Leave room for the type label and the position suffix.
	valueWidth := util.TerminalWidth(defaultOutputWidth) - 28
	for _, arg := range args {
		switch a := arg.(type) {
		case *argline.BinaryArg[string, string]:
			binaryColor.Fprintf(out, "binary  %s", clip(a.ValueText(), valueWidth))
		case *argline.OptionArg[string, string]:
			optionColor.Fprintf(out, "option  -%s", a.Code())
			if value, ok := a.Value(); ok {
				optionColor.Fprintf(out, " = %s", clip(value, valueWidth))
			}
			if tag := a.Tag(); tag != "" {
				metaColor.Fprintf(out, "  (%s)", tag)
			}
		case *argline.ParamArg[string, string]:
			paramColor.Fprintf(out, "param   %s", clip(a.ValueText(), valueWidth))
			if tag := a.Tag(); tag != "" {
				metaColor.Fprintf(out, "  (%s)", tag)
			}
		}
		metaColor.Fprintf(out, "  [arg %d, char %d]", arg.ArgIndex(), arg.CharIndex())
		fmt.Fprintln(out)
	}
}

func clip(s string, max int) string {
	if max < 4 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
