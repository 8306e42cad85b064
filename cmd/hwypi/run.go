package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/hwypi/hwy"
	"github.com/ajroetker/hwypi/hwy/contrib/montecarlo"
)

// Output formats.
const (
	formatAuto  = "auto"  // text on a terminal, plain otherwise
	formatText  = "text"  // multi-line summary
	formatPlain = "plain" // single "pi: <value>" line
)

func runEstimate(cmd *cobra.Command, opts options) error {
	runID := uuid.New()

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel(opts.verbose),
	})).With("run_id", runID.String())
	montecarlo.SetLogger(logger)
	defer montecarlo.SetLogger(nil)

	res, err := montecarlo.Run(opts.config)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if resolveFormat(opts.format, out) == formatText {
		return writeText(out, runID, res)
	}
	return writePlain(out, res)
}

// resolveFormat turns "auto" into text or plain depending on whether w is
// a terminal.
func resolveFormat(format string, w io.Writer) string {
	if format != formatAuto {
		return format
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return formatText
	}
	return formatPlain
}

// writePlain prints the estimate to six significant digits.
func writePlain(w io.Writer, res montecarlo.Result) error {
	_, err := fmt.Fprintf(w, "pi: %.6g\n", res.Pi)
	return err
}

func writeText(w io.Writer, runID uuid.UUID, res montecarlo.Result) error {
	p := message.NewPrinter(language.English)
	_, err := p.Fprintf(w,
		"run:        %s\n"+
			"mode:       %s (dispatch %s)\n"+
			"threads:    %d\n"+
			"samples:    %d\n"+
			"hits:       %d\n"+
			"pi:         %.8f\n"+
			"abs error:  %.2e\n"+
			"elapsed:    %s (%.0f samples/s)\n",
		runID,
		res.Mode, hwy.CurrentName(),
		len(res.Hits),
		res.TotalSamples(),
		res.TotalHits(),
		res.Pi,
		res.AbsError(),
		res.Elapsed.Round(time.Millisecond), res.Throughput(),
	)
	return err
}
