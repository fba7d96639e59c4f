package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTextField(t *testing.T) {
	assert.Equal(t, "x", sanitizeTextField("<script>x</script>"))
	assert.Equal(t, "Jane Tan", sanitizeTextField("  Jane \t Tan \n"))
	assert.Equal(t, "bold name", sanitizeTextField("<b>bold</b> name"))
	assert.Equal(t, "", sanitizeTextField("<br/>"))
}

func TestNormalizePercentage(t *testing.T) {
	assert.Equal(t, "12.3", normalizePercentage("12.345"))
	assert.Equal(t, "50.0", normalizePercentage("50"))
	assert.Equal(t, "7.5", normalizePercentage(7.5))
	assert.Equal(t, "0", normalizePercentage("half"))
	assert.Equal(t, "0", normalizePercentage(nil))
	assert.Equal(t, "0", normalizePercentage(""))
}

func TestSanitizeShareholders(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{
			"shareholder_name":       "<script>x</script>",
			"shareholder_percentage": "12.345",
		},
		map[string]interface{}{
			"shareholder_name":       "Jane Tan",
			"shareholder_percentage": "not-a-number",
		},
		"not a map",
	}

	sanitized := sanitizeShareholders(raw)
	assert.Len(t, sanitized, 2)
	assert.Equal(t, Shareholder{Name: "x", Percentage: "12.3"}, sanitized[0])
	assert.Equal(t, Shareholder{Name: "Jane Tan", Percentage: "0"}, sanitized[1])
}
