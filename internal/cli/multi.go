package cli

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

var AllowedMultiFormats = []string{"comma", "newline", "space", "json"}

// CheckMultiFormat rejects unknown formats and json mixed with others.
func CheckMultiFormat(formats []string) error {
	for _, format := range formats {
		if !slices.Contains(AllowedMultiFormats, format) {
			return fmt.Errorf("invalid multi format: %s, allowed formats are: %v", format, AllowedMultiFormats)
		}
	}
	if slices.Contains(formats, "json") && len(formats) > 1 {
		return fmt.Errorf("multi format 'json' cannot be combined with other formats")
	}
	return nil
}

func splitAndTrim(s string, seps string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return strings.ContainsRune(seps, r) })
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// ParseMultiValues expands raw arguments into values. With no formats the
// arguments are taken as they are. With json each argument is a JSON array
// of strings or a single JSON string. Otherwise each argument is split at
// the separators the formats name and empty pieces are dropped.
func ParseMultiValues(formats []string, rawValues []string) ([]string, error) {
	if rawValues == nil {
		return nil, nil
	}
	if len(formats) == 0 {
		return rawValues, nil
	}
	if err := CheckMultiFormat(formats); err != nil {
		return nil, err
	}
	result := []string{}
	if formats[0] == "json" {
		for _, raw := range rawValues {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			var arr []string
			if err := json.Unmarshal([]byte(raw), &arr); err == nil {
				result = append(result, arr...)
				continue
			}
			var s string
			if err := json.Unmarshal([]byte(raw), &s); err != nil {
				return nil, fmt.Errorf("invalid json multi value: %s, %w", raw, err)
			}
			result = append(result, s)
		}
		return result, nil
	}

	var seps strings.Builder
	for _, format := range formats {
		switch format {
		case "comma":
			seps.WriteString(",")
		case "newline":
			seps.WriteString("\r\n")
		case "space":
			seps.WriteString(" ")
		}
	}
	for _, raw := range rawValues {
		result = append(result, splitAndTrim(raw, seps.String())...)
	}
	return result, nil
}

// OutputMultiValues joins values in the first listed format, preferring
// comma, then newline, then space. json yields a JSON array.
func OutputMultiValues(formats []string, values []string) (string, error) {
	if err := CheckMultiFormat(formats); err != nil {
		return "", err
	}
	if slices.Contains(formats, "json") {
		if values == nil {
			values = []string{}
		}
		data, err := json.Marshal(values)
		if err != nil {
			return "", fmt.Errorf("failed to marshal multi values to json: %w", err)
		}
		return string(data), nil
	}
	sep := ","
	switch {
	case len(formats) == 0, slices.Contains(formats, "comma"):
	case slices.Contains(formats, "newline"):
		sep = "\n"
	case slices.Contains(formats, "space"):
		sep = " "
	}
	return strings.Join(values, sep), nil
}
