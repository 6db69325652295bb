package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"hn-stat/internal/models"
)

const (
	outputPlain = "plain"
	outputTable = "table"
	outputJSON  = "json"
)

func validateOutput(output string) error {
	switch output {
	case outputPlain, outputTable, outputJSON:
		return nil
	default:
		return fmt.Errorf("invalid output format %q, expected one of: plain, table, json", output)
	}
}

// writeDistinct renders a distinct-count result. Plain output is the bare count.
func writeDistinct(w io.Writer, output string, result *models.DistinctResult) error {
	switch output {
	case outputJSON:
		return writeJSON(w, result)
	case outputTable:
		t := newTable(w)
		t.AppendHeader(table.Row{"From", "To", "Distinct", "Matched", "Lines read", "Malformed"})
		t.AppendRow(table.Row{
			result.Query.TimeRange.From,
			result.Query.TimeRange.To,
			result.Distinct,
			result.Stats.Matched,
			result.Stats.LinesRead,
			result.Stats.MalformedLines,
		})
		t.Render()
		return nil
	default:
		_, err := fmt.Fprintln(w, result.Distinct)
		return err
	}
}

// writeTop renders a top-N result. Plain output is one "<text> <count>" line
// per entry, most frequent first.
func writeTop(w io.Writer, output string, result *models.TopResult) error {
	switch output {
	case outputJSON:
		return writeJSON(w, result)
	case outputTable:
		t := newTable(w)
		t.AppendHeader(table.Row{"#", "Request", "Count"})
		for i, entry := range result.Top {
			t.AppendRow(table.Row{i + 1, entry.Text, entry.Count})
		}
		t.AppendFooter(table.Row{"", "Matched", result.Stats.Matched})
		t.Render()
		return nil
	default:
		for _, entry := range result.Top {
			if _, err := fmt.Fprintf(w, "%s %d\n", entry.Text, entry.Count); err != nil {
				return err
			}
		}
		return nil
	}
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
