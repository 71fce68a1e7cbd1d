package ui

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/payweek/internal/shift"
	"github.com/javiermolinar/payweek/internal/summary"
)

func (a *App) summarizeCmd() *cobra.Command {
	var (
		input   string
		output  string
		copyOut bool
	)

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Compute weekly summaries from a shifts JSON file",
		Long: `Read a JSON array of shifts, compute one summary per employee and pay
week, and write the summaries as JSON.

Nothing is written if any shift is malformed or ends before it starts.
Use "-" for standard input or output.`,
		Example: `  payweek summarize --input dataset.json --output output.json
  cat dataset.json | payweek summarize --input - --copy`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shifts, err := readShifts(input, cmd.InOrStdin())
			if err != nil {
				return err
			}

			b, err := a.builder()
			if err != nil {
				return err
			}
			summaries, err := b.Build(shifts)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := summary.EncodeJSON(&buf, summaries, a.config.Output.Indent); err != nil {
				return err
			}

			if output == "" || output == "-" {
				if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
					return fmt.Errorf("writing summaries: %w", err)
				}
			} else {
				if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
					return fmt.Errorf("writing summaries: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d summaries to %s\n", len(summaries), output)
			}

			if copyOut {
				if err := clipboard.WriteAll(buf.String()); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Copied summaries to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Shifts JSON file (\"-\" for stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Summaries JSON file (default stdout)")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Also copy the JSON output to the clipboard")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// readShifts decodes shifts from path, or from stdin when path is "-".
func readShifts(path string, stdin io.Reader) ([]*shift.Shift, error) {
	if path == "-" {
		shifts, err := shift.DecodeJSON(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading shifts from stdin: %w", err)
		}
		return shifts, nil
	}

	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("shifts file does not exist: %s", resolved)
		}
		return nil, fmt.Errorf("opening shifts file: %w", err)
	}
	defer func() { _ = f.Close() }()

	shifts, err := shift.DecodeJSON(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", resolved, err)
	}
	return shifts, nil
}
