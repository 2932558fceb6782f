package report

import (
	"html"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderText(t *testing.T) {
	tokens := Tokens{"patient_name": "Jane Doe", "patient_age": "45", "case_id": "CASE-1"}

	out := string(RenderText("Patient: {{patient_name}}, Age: {{patient_age}}", tokens))

	assert.Contains(t, out, "Patient: Jane Doe, Age: 45")
	assert.Contains(t, out, "<strong>Case ID:</strong> CASE-1")
	assert.Contains(t, out, "urn:schemas-microsoft-com:office:word")
}

func TestRenderText_MissingAndEmptyTokens(t *testing.T) {
	out := string(RenderText("A[{{unknown}}] B[{{ empty }}]", Tokens{"empty": ""}))

	assert.Contains(t, out, "A[] B[]")
	assert.NotContains(t, out, "{{")
	assert.NotContains(t, out, "null")
	assert.NotContains(t, out, "undefined")
}

func TestRenderText_NoPlaceholders(t *testing.T) {
	content := "Nothing to substitute here."
	assert.Contains(t, string(RenderText(content, Tokens{})), content)
}

func TestRenderText_EscapesValuesAndKeepsLineBreaks(t *testing.T) {
	out := string(RenderText("Findings:\n{{investigation_findings}}", Tokens{
		"investigation_findings": "<script>x</script> & more",
	}))

	assert.Contains(t, out, "Findings:<br>&lt;script&gt;x&lt;/script&gt; &amp; more")
	assert.NotContains(t, out, "<script>")
}

func TestInterpolate(t *testing.T) {
	assert.Equal(t, "Dear Jane,", Interpolate("Dear {{name}},", Tokens{"name": "Jane"}, nil))
	assert.Equal(t, "a &amp; b", Interpolate("{{v}}", Tokens{"v": "a & b"}, html.EscapeString))
}
