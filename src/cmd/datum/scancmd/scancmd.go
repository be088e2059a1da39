package scancmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"datum/src/internal/dates"
	"datum/src/internal/interpret"
)

// noResult marks lines that yielded no date in the text format.
const noResult = "none"

// record is one scanned line with whatever the decoder recovered. A
// miss keeps the zero date, which marshals as null.
type record struct {
	Input     string          `json:"input" yaml:"input"`
	Date      dates.Date      `json:"date" yaml:"date"`
	Precision dates.Precision `json:"precision" yaml:"precision"`
}

// New returns the scan command for bulk decoding of files or stdin.
func New() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:          "scan [file...]",
		Short:        "Decode a date from every line of the given files, or of stdin",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := collect(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), format, recs)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json or yaml")
	return cmd
}

// collect gathers records from the named files, or from stdin when no
// files are given.
func collect(stdin io.Reader, paths []string) ([]record, error) {
	if len(paths) == 0 {
		return read(stdin)
	}
	var recs []record
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		rs, err := read(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		recs = append(recs, rs...)
	}
	return recs, nil
}

// read decodes every non-empty line. Lines reach the decoder verbatim;
// surrounding whitespace is evidence, not noise.
func read(r io.Reader) ([]record, error) {
	var recs []record
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		rec := record{Input: line}
		if d, err := interpret.Date(line); err == nil {
			rec.Date = d
			rec.Precision = d.Precision()
		}
		recs = append(recs, rec)
	}
	return recs, sc.Err()
}

func write(w io.Writer, format string, recs []record) error {
	switch format {
	case "text":
		for _, r := range recs {
			res := noResult
			if !r.Date.IsZero() {
				res = r.Date.String()
			}
			if _, err := fmt.Fprintf(w, "%s\t%s\n", res, r.Input); err != nil {
				return err
			}
		}
		return nil
	case "json":
		b, err := json.MarshalIndent(recs, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(recs)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
