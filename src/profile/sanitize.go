package profile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Shareholder is the persisted shape of one shareholders entry. Percentage is
// kept as a fixed one-decimal numeric string.
type Shareholder struct {
	Name       string `json:"shareholder_name"`
	Percentage string `json:"shareholder_percentage"`
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// sanitizeTextField coerces a submitted value to plain text: markup stripped,
// control characters removed, runs of whitespace collapsed to single spaces.
func sanitizeTextField(raw string) string {
	text := tagPattern.ReplaceAllString(raw, "")

	var builder strings.Builder
	builder.Grow(len(text))
	for _, r := range text {
		if unicode.IsControl(r) {
			continue
		}
		builder.WriteRune(r)
	}

	return strings.Join(strings.Fields(builder.String()), " ")
}

// normalizePercentage formats a numeric value to exactly one decimal place.
// Anything non-numeric silently becomes "0".
func normalizePercentage(raw interface{}) string {
	text := strings.TrimSpace(fmt.Sprint(raw))
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return "0"
	}
	return strconv.FormatFloat(value, 'f', 1, 64)
}

// sanitizeShareholders maps the submitted list to the persisted shape, each
// element sanitized independently.
func sanitizeShareholders(raw []interface{}) []Shareholder {
	sanitized := make([]Shareholder, 0, len(raw))
	for _, element := range raw {
		fields, ok := element.(map[string]interface{})
		if !ok {
			continue
		}

		name, _ := fields["shareholder_name"].(string)
		sanitized = append(sanitized, Shareholder{
			Name:       sanitizeTextField(name),
			Percentage: normalizePercentage(fields["shareholder_percentage"]),
		})
	}
	return sanitized
}
