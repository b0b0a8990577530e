package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sanjayts/kat"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	bytesList  string
	charsList  string
	fieldsList string
	delimiter  string
	colorMode  string
)

var rootCmd = &cobra.Command{
	Use:   "kat [flags] [FILE...]",
	Short: "Kat - cut out selected bytes, characters, or fields from each line",
	Long: `Kat prints selected parts of lines from each FILE to standard output.
With no FILE, or when FILE is -, it reads standard input.

Positions are written the way cut users write them: a comma-separated
list of 1-based numbers and N-M ranges, for example "1,3-5,8".

This is a Go port of the original kat tool.`,
	Args:         cobra.ArbitraryArgs,
	RunE:         runRoot,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&bytesList, "bytes", "b", "", "select only these bytes (LIST)")
	rootCmd.Flags().StringVarP(&charsList, "characters", "c", "", "select only these characters (LIST)")
	rootCmd.Flags().StringVarP(&fieldsList, "fields", "f", "", "select only these fields (LIST)")
	rootCmd.Flags().StringVarP(&delimiter, "delimiter", "d", "\t", "use DELIM instead of TAB for field delimiter")
	rootCmd.Flags().StringVar(&colorMode, "color", "auto", "Color diagnostics: auto, always, never")

	rootCmd.MarkFlagsMutuallyExclusive("bytes", "characters", "fields")
	rootCmd.MarkFlagsMutuallyExclusive("delimiter", "bytes")
	rootCmd.MarkFlagsMutuallyExclusive("delimiter", "characters")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	sel, err := buildSelector(cmd)
	if err != nil {
		return err
	}

	delim, err := kat.ParseDelimiter(delimiter)
	if err != nil {
		return err
	}

	cutter, err := kat.New(sel,
		kat.WithDelimiter(delim),
		kat.WithStdin(cmd.InOrStdin()),
		kat.WithOutput(cmd.OutOrStdout()),
		kat.WithErrOutput(diagnosticWriter(cmd.ErrOrStderr())),
	)
	if err != nil {
		return err
	}

	return cutter.Run(args)
}

// buildSelector turns whichever selection flag was given into a
// Selector. Exactly one of --bytes, --characters, or --fields must be
// present; cobra already rejects combinations, so only the none-given
// case is checked here.
func buildSelector(cmd *cobra.Command) (kat.Selector, error) {
	var (
		mode kat.SelectMode
		list string
	)
	switch {
	case cmd.Flags().Changed("fields"):
		mode, list = kat.SelectFields, fieldsList
	case cmd.Flags().Changed("characters"):
		mode, list = kat.SelectChars, charsList
	case cmd.Flags().Changed("bytes"):
		mode, list = kat.SelectBytes, bytesList
	default:
		return kat.Selector{}, errors.New("must specify one of --bytes, --characters, or --fields")
	}

	positions, err := kat.ParseList(list)
	if err != nil {
		return kat.Selector{}, fmt.Errorf("parsing %s list: %w", mode, err)
	}
	return kat.Selector{Mode: mode, Positions: positions}, nil
}

// styles holds color formatters for diagnostics
type styles struct {
	fileErr *color.Color
}

// newStyles creates color formatters for diagnostic output
// enabled=false respects --color=never and the NO_COLOR env var
func newStyles(enabled bool) *styles {
	s := &styles{
		fileErr: color.New(color.FgRed),
	}
	if !enabled {
		s.fileErr.DisableColor()
	}
	return s
}

// diagnosticWriter wraps the stderr writer so per-source failure lines
// come out in the configured color.
func diagnosticWriter(errOut io.Writer) io.Writer {
	// Determine if colors should be enabled based on --color flag
	switch colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default: // "auto"
		// Check if stderr is a TTY and NO_COLOR is not set
		if !term.IsTerminal(int(os.Stderr.Fd())) || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		} else {
			color.NoColor = false
		}
	}
	s := newStyles(!color.NoColor)
	return &styledWriter{style: s.fileErr, out: errOut}
}

// styledWriter applies one color style to everything written through it.
type styledWriter struct {
	style *color.Color
	out   io.Writer
}

func (w *styledWriter) Write(p []byte) (int, error) {
	if _, err := w.style.Fprint(w.out, string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}
