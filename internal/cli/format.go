package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dshills/threadfmt/internal/config"
	"github.com/dshills/threadfmt/internal/output"
	"github.com/dshills/threadfmt/internal/thread"
)

// downloadName is the file written by --download.
const downloadName = "formatted_bulletin_board.txt"

// Format flags
var (
	flagStart          int
	flagName           string
	flagJumpMin        int
	flagJumpMax        int
	flagSeed           uint64
	flagFormat         string
	flagOut            string
	flagDownload       bool
	flagCopy           bool
	flagColor          string
	flagLogLevel       string
	flagStartFromInput bool
)

func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagStart, "start", 0, "Starting comment number (default 1)")
	cmd.Flags().StringVar(&flagName, "name", "", "Anonymous poster name (default 名無し)")
	cmd.Flags().IntVar(&flagJumpMin, "jump-min", 0, "Minimum numbering jump after a ＊ marker (default 50)")
	cmd.Flags().IntVar(&flagJumpMax, "jump-max", 0, "Maximum numbering jump after a ＊ marker (default 250)")
	cmd.Flags().Uint64Var(&flagSeed, "seed", 0, "Seed for jump sizes, for reproducible output")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&flagDownload, "download", false, "Write output to "+downloadName)
	cmd.Flags().BoolVar(&flagCopy, "copy", false, "Copy the formatted text to the clipboard")
	cmd.Flags().StringVar(&flagColor, "color", "", "Colorize text output (auto, always, never)")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&flagStartFromInput, "start-from-input", false, "Use a leading digits-only input line as the starting number")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagStart > 0 {
		m["startNumber"] = strconv.Itoa(flagStart)
	}
	if flagName != "" {
		m["anonymousName"] = flagName
	}
	if flagJumpMin > 0 {
		m["jumpMin"] = strconv.Itoa(flagJumpMin)
	}
	if flagJumpMax > 0 {
		m["jumpMax"] = strconv.Itoa(flagJumpMax)
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagColor != "" {
		m["color"] = flagColor
	}
	if flagLogLevel != "" {
		m["logLevel"] = flagLogLevel
	}
	return m
}

func outPath() string {
	if flagOut == "" && flagDownload {
		return downloadName
	}
	return flagOut
}

// formatText applies input-level defaults to text and builds the thread.
func formatText(text string, cfg config.Config, rnd thread.Rand) (*thread.Thread, error) {
	opts := cfg.ThreadOptions()
	if flagStartFromInput {
		if n, rest, ok := splitStartLine(text); ok {
			opts.StartNumber = n
			text = rest
		}
	}
	return thread.Build(text, opts, rnd)
}

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Format text from a file or stdin as a bulletin-board thread",
	Long: "Format reads text from a file (or stdin when no file or \"-\" is given), splits it into\n" +
		"comments separated by blank lines, and numbers each one. An optional first line starting\n" +
		"with \"## \" is kept as the thread title. Lines containing ＊ are copied through and make\n" +
		"the next comment's number jump forward by a random amount.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger, err := newLogger(os.Stderr, cfg.LogLevel)
		if err != nil {
			return err
		}

		text, err := readInput(args, cmd.InOrStdin())
		if err != nil {
			logger.Error("reading input", "err", err)
			exitCode = ExitRuntimeError
			return nil
		}
		if strings.TrimSpace(text) == "" {
			fmt.Fprintln(os.Stderr, "Error: no input text")
			exitCode = ExitUsageError
			return nil
		}

		rnd := thread.DefaultRand()
		if cmd.Flags().Changed("seed") {
			rnd = thread.NewRand(flagSeed)
		}

		runFormat(text, cfg, rnd, logger)
		return nil
	},
}

func runFormat(text string, cfg config.Config, rnd thread.Rand, logger *log.Logger) {
	t, err := formatText(text, cfg, rnd)
	if err != nil {
		logger.Error("formatting", "err", err)
		exitCode = ExitRuntimeError
		return
	}

	s := thread.Summarize(t)
	logger.Debug("formatted thread",
		"title", t.Title,
		"posts", s.Posts,
		"markers", s.Markers,
		"jumps", s.Jumps,
		"first", s.First,
		"last", s.Last,
	)

	dest := outPath()
	styles := output.NoStyles()
	if dest == "" && cfg.Format == "text" && output.UseColor(cfg.Color, output.StdoutIsTerminal()) {
		styles = output.NewStyles(os.Stdout)
	}
	if err := output.WriteThread(t, cfg.Format, dest, styles); err != nil {
		logger.Error("writing output", "err", err)
		exitCode = ExitRuntimeError
		return
	}
	if dest != "" {
		logger.Info("wrote thread", "path", dest)
	}

	if flagCopy {
		if err := writeClipboard(thread.Render(t)); err != nil {
			logger.Error("copying to clipboard", "err", err)
			exitCode = ExitRuntimeError
			return
		}
		logger.Info("copied thread to clipboard")
	}
}

func init() {
	addFormatFlags(formatCmd)
}
