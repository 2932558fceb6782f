package report

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"html"
	"io"
	"regexp"
	"sort"
	"strings"
)

// DocxContentType is the MIME type of rendered packaged documents.
const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

const (
	contentTypesPart = "[Content_Types].xml"
	mainDocumentPart = "word/document.xml"
)

var zipSignature = []byte("PK\x03\x04")

var (
	// textNodePattern matches a non-empty <w:t> element; group 1 is its escaped text.
	textNodePattern = regexp.MustCompile(`<w:t(?:\s[^>]*[^/>])?>([^<]*)</w:t>`)
	// paragraphTag matches <w:p ...> and </w:p> but not <w:p/>, <w:pPr> or <w:pict>.
	paragraphTag = regexp.MustCompile(`<w:p(?:\s[^>]*[^/>])?>|</w:p>`)
	// placeholderPattern accepts {token} and {{token}}.
	placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}|\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}`)

	xmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
)

// RenderOptions controls packaged rendering.
type RenderOptions struct {
	// Strict fails the render when a placeholder names a token absent from the mapping.
	Strict bool
}

// IsPackage reports whether b starts with a zip local file header.
func IsPackage(b []byte) bool {
	return bytes.HasPrefix(b, zipSignature)
}

// RenderPackage substitutes tokens into every text part of a .docx package.
// Placeholders split across runs of one paragraph are resolved as a whole.
// When no part contains a placeholder the input slice is returned unchanged.
func RenderPackage(src []byte, tokens Tokens, opts RenderOptions) ([]byte, error) {
	if !IsPackage(src) {
		return nil, &RenderError{Kind: ErrUnsupportedFormat, Cause: errors.New("missing zip signature")}
	}
	zr, err := zip.NewReader(bytes.NewReader(src), int64(len(src)))
	if err != nil {
		return nil, &RenderError{Kind: ErrMalformedPackage, Cause: err}
	}

	var hasTypes, hasMain bool
	for _, f := range zr.File {
		switch f.Name {
		case contentTypesPart:
			hasTypes = true
		case mainDocumentPart:
			hasMain = true
		}
	}
	if !hasTypes || !hasMain {
		return nil, &RenderError{Kind: ErrMalformedPackage, Cause: errors.New("missing " + mainDocumentPart + " or " + contentTypesPart)}
	}

	replaced := make(map[string][]byte)
	missing := make(map[string]struct{})
	for _, f := range zr.File {
		if !isTextPart(f.Name) {
			continue
		}
		data, err := readEntry(f)
		if err != nil {
			return nil, &RenderError{Kind: ErrMalformedPackage, Part: f.Name, Cause: err}
		}
		if err := checkWellFormed(data); err != nil {
			return nil, &RenderError{Kind: ErrMalformedPackage, Part: f.Name, Cause: err}
		}
		out, changed := substitute(data, tokens, missing)
		if changed {
			replaced[f.Name] = out
		}
	}

	if opts.Strict && len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for name := range missing {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, &RenderError{Kind: ErrUnresolvedToken, Tokens: names}
	}
	if len(replaced) == 0 {
		return src, nil
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range zr.File {
		data, ok := replaced[f.Name]
		if !ok {
			if err := zw.Copy(f); err != nil {
				return nil, &RenderError{Kind: ErrMalformedPackage, Part: f.Name, Cause: err}
			}
			continue
		}
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   zip.Deflate,
			Modified: f.Modified,
		})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Placeholders lists the distinct token names referenced by a package's text parts.
func Placeholders(src []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(src), int64(len(src)))
	if err != nil {
		return nil, &RenderError{Kind: ErrMalformedPackage, Cause: err}
	}
	seen := make(map[string]struct{})
	for _, f := range zr.File {
		if !isTextPart(f.Name) {
			continue
		}
		data, err := readEntry(f)
		if err != nil {
			return nil, &RenderError{Kind: ErrMalformedPackage, Part: f.Name, Cause: err}
		}
		for _, group := range paragraphs(data) {
			text, _ := group.text()
			for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
				seen[placeholderName(m)] = struct{}{}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func isTextPart(name string) bool {
	if !strings.HasPrefix(name, "word/") || !strings.HasSuffix(name, ".xml") {
		return false
	}
	base := strings.TrimPrefix(name, "word/")
	return base == "document.xml" ||
		base == "footnotes.xml" ||
		base == "endnotes.xml" ||
		strings.HasPrefix(base, "header") ||
		strings.HasPrefix(base, "footer")
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func checkWellFormed(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// textNode is one <w:t> element: [start, end) spans the whole element,
// text is its unescaped content.
type textNode struct {
	start, end int
	text       string
}

type paragraph []textNode

// text concatenates the paragraph's runs and returns the end offset of each node.
func (p paragraph) text() (string, []int) {
	var b strings.Builder
	ends := make([]int, len(p))
	for i, n := range p {
		b.WriteString(n.text)
		ends[i] = b.Len()
	}
	return b.String(), ends
}

// paragraphs groups the text nodes of an XML part by their innermost enclosing
// paragraph. Paragraphs nested in text boxes form their own group, so the runs
// of the outer paragraph on either side of a text box stay together. Nodes
// outside any paragraph are grouped per gap between paragraph tags.
func paragraphs(data []byte) []paragraph {
	locs := textNodePattern.FindAllSubmatchIndex(data, -1)
	if len(locs) == 0 {
		return nil
	}
	tags := paragraphTag.FindAllIndex(data, -1)

	var (
		groups []paragraph
		open   []int
		loose  = -1
		ti     int
	)
	for _, loc := range locs {
		for ; ti < len(tags) && tags[ti][0] < loc[0]; ti++ {
			loose = -1
			if data[tags[ti][0]+1] == '/' {
				if len(open) > 0 {
					open = open[:len(open)-1]
				}
				continue
			}
			groups = append(groups, nil)
			open = append(open, len(groups)-1)
		}

		n := textNode{
			start: loc[0],
			end:   loc[1],
			text:  html.UnescapeString(string(data[loc[2]:loc[3]])),
		}
		idx := loose
		if len(open) > 0 {
			idx = open[len(open)-1]
		} else if idx < 0 {
			groups = append(groups, nil)
			idx = len(groups) - 1
			loose = idx
		}
		groups[idx] = append(groups[idx], n)
	}

	out := groups[:0]
	for _, g := range groups {
		if len(g) > 0 {
			out = append(out, g)
		}
	}
	return out
}

func placeholderName(m []string) string {
	if m[1] != "" {
		return m[1]
	}
	return m[2]
}

// substitute replaces placeholders in one XML part. Names absent from tokens
// render as "" and are recorded in missing.
func substitute(data []byte, tokens Tokens, missing map[string]struct{}) ([]byte, bool) {
	type rewrite struct {
		node textNode
		text string
	}
	var rewrites []rewrite

	for _, p := range paragraphs(data) {
		full, ends := p.text()
		matches := placeholderPattern.FindAllStringSubmatchIndex(full, -1)
		if len(matches) == 0 {
			continue
		}
		values := make([]string, len(matches))
		for i, m := range matches {
			var name string
			if m[2] >= 0 {
				name = full[m[2]:m[3]]
			} else {
				name = full[m[4]:m[5]]
			}
			v, ok := tokens[name]
			if !ok {
				missing[name] = struct{}{}
			}
			values[i] = v
		}

		// The replacement lands in the node holding the placeholder's first
		// byte; the remaining bytes of the placeholder are dropped from
		// whichever nodes they fall in.
		out := make([]strings.Builder, len(p))
		node, mi := 0, 0
		for pos := 0; pos < len(full); {
			for pos >= ends[node] {
				node++
			}
			if mi < len(matches) && pos == matches[mi][0] {
				out[node].WriteString(values[mi])
				pos = matches[mi][1]
				mi++
				continue
			}
			out[node].WriteByte(full[pos])
			pos++
		}
		for i, n := range p {
			if s := out[i].String(); s != n.text {
				rewrites = append(rewrites, rewrite{node: n, text: s})
			}
		}
	}
	if len(rewrites) == 0 {
		return data, false
	}
	sort.Slice(rewrites, func(i, j int) bool { return rewrites[i].node.start < rewrites[j].node.start })

	var buf bytes.Buffer
	buf.Grow(len(data))
	cursor := 0
	for _, r := range rewrites {
		buf.Write(data[cursor:r.node.start])
		writeTextNode(&buf, r.text)
		cursor = r.node.end
	}
	buf.Write(data[cursor:])
	return buf.Bytes(), true
}

// writeTextNode emits a run text element; newlines become <w:br/> breaks.
func writeTextNode(buf *bytes.Buffer, text string) {
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			buf.WriteString("<w:br/>")
		}
		buf.WriteString(`<w:t xml:space="preserve">`)
		buf.WriteString(xmlEscaper.Replace(line))
		buf.WriteString("</w:t>")
	}
}
