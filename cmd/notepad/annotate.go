package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/GabrielSantos23/notepad/internal/config"
	"github.com/GabrielSantos23/notepad/internal/logger"
	"github.com/GabrielSantos23/notepad/internal/markdown"
	"github.com/GabrielSantos23/notepad/internal/ui"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate [text...]",
	Short: "Print the styled ranges found in text",
	Long: `Runs the inline styler over each argument, or over each line of
stdin when no arguments are given, and prints the ranges it finds.

Examples:
  notepad annotate 'some **bold** text'
  echo '*a* and ~~b~~' | notepad annotate --format json --units utf16
  notepad annotate --paint '**bold** and ` + "`code`" + `'`,
	RunE: runAnnotate,
}

func init() {
	annotateCmd.Flags().StringP("format", "f", "text", "Output format: text, json, yaml")
	annotateCmd.Flags().StringP("units", "u", "bytes", "Offset units: bytes, runes, utf16")
	annotateCmd.Flags().Bool("paint", false, "Print the text with styles applied instead of ranges")
}

// annotation is one annotated input in machine readable output
type annotation struct {
	Text   string                 `json:"text" yaml:"text"`
	Units  string                 `json:"units" yaml:"units"`
	Ranges []markdown.StyledRange `json:"ranges" yaml:"ranges"`
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	unitName, _ := cmd.Flags().GetString("units")
	paint, _ := cmd.Flags().GetBool("paint")

	unit, err := markdown.ParseUnit(unitName)
	if err != nil {
		return err
	}

	inputs := args
	if len(inputs) == 0 {
		in := cmd.InOrStdin()
		if in == os.Stdin && !stdinIsPiped() {
			return errors.New("no text given: pass arguments or pipe lines on stdin")
		}
		if inputs, err = readLines(in); err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
	}

	// Only the editor writes the log file, annotate logs to stderr
	level, err := logger.ParseLevel(config.GetLogLevel())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	log := logger.NewWithLevel(cmd.ErrOrStderr(), level)

	results := annotateAll(inputs, log)
	out := cmd.OutOrStdout()

	if paint {
		return writePainted(out, results)
	}
	return writeAnnotations(out, results, format, unit)
}

// annotateAll annotates every input, logging each result
func annotateAll(inputs []string, log *logger.Logger) []markdown.AnnotatedText {
	results := make([]markdown.AnnotatedText, len(inputs))
	for i, text := range inputs {
		start := time.Now()
		results[i] = markdown.Annotate(text)
		log.TextAnnotated(i+1, len(results[i].Ranges), time.Since(start))
	}
	return results
}

// writeAnnotations prints the ranges of each result in the given format
func writeAnnotations(w io.Writer, results []markdown.AnnotatedText, format string, unit markdown.Unit) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toAnnotations(results, unit))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(toAnnotations(results, unit))
	case "text":
		for _, at := range results {
			fmt.Fprintln(w, at.Raw)
			converted := at.In(unit)
			for i, r := range at.Ranges {
				c := converted[i]
				fmt.Fprintf(w, "  %-14s [%d,%d)  %q\n", r.Style, c.Start, c.End, at.Text(r))
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (supported: text, json, yaml)", format)
	}
}

func toAnnotations(results []markdown.AnnotatedText, unit markdown.Unit) []annotation {
	list := make([]annotation, len(results))
	for i, at := range results {
		list[i] = annotation{Text: at.Raw, Units: unit.String(), Ranges: at.In(unit)}
	}
	return list
}

// writePainted prints each result rendered with the configured styles
func writePainted(w io.Writer, results []markdown.AnnotatedText) error {
	styles := ui.NewStyles(lipgloss.NewRenderer(w))
	styles.LoadFromConfig()
	for _, at := range results {
		line := styles.Paint(at, ui.PaintOptions{Base: styles.Text, Cursor: ui.NoCursor})
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// readLines reads r line by line. Line endings are dropped.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	return lines, sc.Err()
}

// stdinIsPiped reports whether stdin is a pipe or file rather than a terminal
func stdinIsPiped() bool {
	info, err := os.Stdin.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice == 0
}
