package report

import (
	"bytes"
	"html"
	"html/template"
	"regexp"
	"strings"
)

// LegacyContentType is served for HTML reports that word processors open as documents.
const LegacyContentType = "application/msword"

var markerPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

var legacyLayout = template.Must(template.New("report").Parse(`<html xmlns:o='urn:schemas-microsoft-com:office:office' xmlns:w='urn:schemas-microsoft-com:office:word' xmlns='http://www.w3.org/TR/REC-html40'>
<head>
<meta charset="utf-8">
<title>Investigation Report</title>
<style>
body { font-family: 'Arial', sans-serif; line-height: 1.6; color: #333; }
.header { text-align: center; margin-bottom: 30px; border-bottom: 2px solid #333; padding-bottom: 10px; }
h1 { font-size: 24px; color: #2c3e50; margin: 0; }
.meta { margin-bottom: 20px; font-size: 14px; color: #555; }
.section { margin-bottom: 25px; }
.content { white-space: pre-wrap; }
.footer { margin-top: 50px; text-align: center; font-size: 12px; color: #aaa; border-top: 1px solid #eee; padding-top: 10px; }
table { width: 100%; border-collapse: collapse; margin-bottom: 15px; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
th { background-color: #f2f2f2; }
</style>
</head>
<body>
<div class="header">
<h1>Investigation Report</h1>
<p>{{.Company}}</p>
</div>
<div class="meta">
<table style="border: none;">
<tr style="border: none;"><td style="border: none;"><strong>Case ID:</strong> {{.CaseID}}</td><td style="border: none;"><strong>Date:</strong> {{.Date}}</td></tr>
<tr style="border: none;"><td style="border: none;"><strong>Officer:</strong> {{.Officer}}</td><td style="border: none;"></td></tr>
</table>
</div>
<div class="section">
<div class="content">{{.Body}}</div>
</div>
<div class="footer">Generated by Investigation Management System</div>
</body>
</html>
`))

// RenderText interpolates an inline template into a Word-compatible HTML
// document. Every {{token}} marker is replaced with its HTML-escaped value;
// markers naming unknown tokens render as "".
func RenderText(content string, tokens Tokens) []byte {
	body := Interpolate(content, tokens, html.EscapeString)
	body = strings.ReplaceAll(body, "\n", "<br>")

	var buf bytes.Buffer
	// The layout only references fields of a struct literal; Execute cannot fail.
	_ = legacyLayout.Execute(&buf, struct {
		Company, CaseID, Date, Officer string
		Body                           template.HTML
	}{
		Company: tokens["insurance_company"],
		CaseID:  tokens["case_id"],
		Date:    tokens["generated_date"],
		Officer: tokens["officer_name"],
		Body:    template.HTML(body),
	})
	return buf.Bytes()
}

// Interpolate replaces every {{token}} marker in s. escape is applied to
// values and may be nil.
func Interpolate(s string, tokens Tokens, escape func(string) string) string {
	return markerPattern.ReplaceAllStringFunc(s, func(marker string) string {
		name := markerPattern.FindStringSubmatch(marker)[1]
		v := tokens[name]
		if escape != nil {
			v = escape(v)
		}
		return v
	})
}
