package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vipcxj/typekit/internal/codec"
)

// Render writes results to w in format. Text output is one line per result;
// the other formats write a list of records.
func Render(w io.Writer, format Format, results []Result) error {
	if format == FormatText {
		for i := range results {
			line, err := Text(&results[i])
			if err != nil {
				return fmt.Errorf("result %d: %w", i, err)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	}

	records := make([]record, len(results))
	for i := range results {
		rec, err := toRecord(&results[i])
		if err != nil {
			return fmt.Errorf("result %d: %w", i, err)
		}
		records[i] = rec
	}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	case FormatCBOR:
		data, err := codec.MarshalHex(records)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, data)
		return err
	}
	return fmt.Errorf("unsupported format: %v", format)
}

// Export writes results as shell assignments of one variable named after
// key. Several results are joined with the output multi format.
func Export(w io.Writer, key string, opts Options, results []Result) error {
	values := make([]string, 0, len(results))
	for i := range results {
		if IsFailure(&results[i]) {
			continue
		}
		text, err := Text(&results[i])
		if err != nil {
			return err
		}
		values = append(values, text)
	}
	joined, err := OutputMultiValues(opts.MultiFormat, values)
	if err != nil {
		return err
	}
	out, err := ExportVars(opts.Shell, []Var{{Name: EnvName(key, "", opts.EnvPrefix), Value: joined}}, opts.Persist)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
