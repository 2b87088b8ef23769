// Command spreadsheet runs a line-oriented script against a single
// in-memory sheet and prints the resulting grid.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vogtb/spreadsheet"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var showFormulas bool
	var showFingerprint bool

	cmd := &cobra.Command{
		Use:   "spreadsheet [script]",
		Short: "Run a line-oriented spreadsheet script and print the resulting sheet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				src = f
			}

			sheet := spreadsheet.NewSheet()
			if err := runScript(sheet, src); err != nil {
				return err
			}

			switch {
			case showFingerprint:
				fp, err := sheet.Fingerprint()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), fp)
				return nil
			case showFormulas:
				return sheet.PrintTexts(cmd.OutOrStdout())
			default:
				return sheet.PrintValues(cmd.OutOrStdout())
			}
		},
	}

	cmd.Flags().BoolVar(&showFormulas, "formulas", false, "print formula text instead of computed values")
	cmd.Flags().BoolVar(&showFingerprint, "fingerprint", false, "print a content fingerprint instead of the sheet")
	return cmd
}

// runScript applies one `set <cell> <text>` or `clear <cell>` command
// per non-blank, non-comment line read from src.
func runScript(sheet *spreadsheet.Sheet, src *os.File) error {
	scanner := bufio.NewScanner(src)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.SplitN(text, " ", 3)
		switch fields[0] {
		case "set":
			if len(fields) != 3 {
				return fmt.Errorf("line %d: usage: set <cell> <text>", line)
			}
			if err := sheet.SetCell(spreadsheet.ParsePosition(fields[1]), fields[2]); err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
		case "clear":
			if len(fields) != 2 {
				return fmt.Errorf("line %d: usage: clear <cell>", line)
			}
			if err := sheet.ClearCell(spreadsheet.ParsePosition(fields[1])); err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
		default:
			return fmt.Errorf("line %d: unknown command %q", line, fields[0])
		}
	}
	return scanner.Err()
}
