package monthscmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"datum/src/internal/months"
)

// New returns the months command listing the recognized month names.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "List the recognized month names and abbreviations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := months.All()
			rows := make([][]string, 0, len(all))
			for _, e := range all {
				rows = append(rows, []string{fmt.Sprintf("%02d", e.Month), strings.Join(e.Names, ", ")})
			}
			renderTable(cmd.OutOrStdout(), []string{"month", "names"}, rows)
			return nil
		},
	}
}

func renderTable(w io.Writer, headers []string, rows [][]string) {
	widths := computeColWidths(headers, rows)
	writeColumns(w, headers, widths)
	writeSeparator(w, widths)
	for _, r := range rows {
		writeColumns(w, r, widths)
	}
}

func computeColWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, r := range rows {
		for i := range headers {
			if i < len(r) && len(r[i]) > widths[i] {
				widths[i] = len(r[i])
			}
		}
	}
	return widths
}

func writeSeparator(w io.Writer, widths []int) {
	cols := make([]string, len(widths))
	for i, width := range widths {
		cols[i] = strings.Repeat("-", width)
	}
	writeColumns(w, cols, widths)
}

func writeColumns(w io.Writer, cols []string, widths []int) {
	for i, width := range widths {
		val := ""
		if i < len(cols) {
			val = cols[i]
		}
		_, _ = fmt.Fprintf(w, "%-*s", width, val)
		if i != len(widths)-1 {
			_, _ = fmt.Fprint(w, "  ")
		}
	}
	_, _ = fmt.Fprint(w, "\n")
}
