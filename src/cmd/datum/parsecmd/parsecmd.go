package parsecmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"datum/src/internal/dates"
	"datum/src/internal/interpret"
)

// record is the full decoding of one input, as emitted by the json and
// yaml formats.
type record struct {
	Input     string          `json:"input" yaml:"input"`
	Date      dates.Date      `json:"date" yaml:"date"`
	Precision dates.Precision `json:"precision" yaml:"precision"`
}

// New returns the parse command for decoding one text given as args.
// Multiple args are joined with single spaces before decoding.
func New() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:          "parse <text>...",
		Short:        "Decode a calendar date from the given text",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			d, err := interpret.Date(text)
			if err != nil {
				return fmt.Errorf("parse %q: %w", text, err)
			}
			return write(cmd.OutOrStdout(), format, record{Input: text, Date: d, Precision: d.Precision()})
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json or yaml")
	return cmd
}

func write(w io.Writer, format string, r record) error {
	switch format {
	case "text":
		_, err := fmt.Fprintln(w, r.Date)
		return err
	case "json":
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
