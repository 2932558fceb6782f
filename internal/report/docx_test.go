package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(text string) string {
	return `<w:r><w:t xml:space="preserve">` + text + `</w:t></w:r>`
}

func para(runs ...string) string {
	return `<w:p>` + strings.Join(runs, "") + `</w:p>`
}

func TestRenderPackage_SingleRun(t *testing.T) {
	src := buildPackage(t, map[string]string{
		mainDocumentPart: documentXML(para(run("Name of Patient {patient_name}"))),
	})

	out, err := RenderPackage(src, Tokens{"patient_name": "Jane Doe"}, RenderOptions{})
	require.NoError(t, err)

	doc := readPart(t, out, mainDocumentPart)
	assert.Contains(t, doc, "Name of Patient Jane Doe")
	assert.NotContains(t, doc, "{patient_name}")
}

func TestRenderPackage_PlaceholderSplitAcrossRuns(t *testing.T) {
	src := buildPackage(t, map[string]string{
		mainDocumentPart: documentXML(para(
			run("Claim No. {cla"),
			`<w:r><w:rPr><w:b/></w:rPr><w:t>im_num</w:t></w:r>`,
			run("ber} end"),
		)),
	})

	out, err := RenderPackage(src, Tokens{"claim_number": "CLM-77"}, RenderOptions{})
	require.NoError(t, err)

	doc := readPart(t, out, mainDocumentPart)
	assert.Contains(t, doc, `<w:t xml:space="preserve">Claim No. CLM-77</w:t>`)
	assert.Contains(t, doc, `<w:rPr><w:b/></w:rPr><w:t xml:space="preserve"></w:t>`)
	assert.Contains(t, doc, `<w:t xml:space="preserve"> end</w:t>`)
	assert.NotContains(t, doc, "im_num")
}

func TestRenderPackage_DoubleBraces(t *testing.T) {
	src := buildPackage(t, map[string]string{
		mainDocumentPart: documentXML(para(run("Age: {{ patient_age }}"))),
	})

	out, err := RenderPackage(src, Tokens{"patient_age": "45"}, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, readPart(t, out, mainDocumentPart), "Age: 45<")
}

func TestRenderPackage_NoPlaceholdersIsNoop(t *testing.T) {
	src := buildPackage(t, map[string]string{
		mainDocumentPart:  documentXML(para(run("Plain text only"))),
		"word/styles.xml": `<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"/>`,
	})

	out, err := RenderPackage(src, Tokens{"patient_name": "Jane"}, RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestRenderPackage_PlaceholderDoesNotSpanParagraphs(t *testing.T) {
	src := buildPackage(t, map[string]string{
		mainDocumentPart: documentXML(para(run("{patient")) + para(run("_name}"))),
	})

	out, err := RenderPackage(src, Tokens{"patient_name": "Jane"}, RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestRenderPackage_PlaceholderAroundTextBox(t *testing.T) {
	textBox := `<w:r><w:pict><w:txbxContent>` + para(run("{case_id}")) + `</w:txbxContent></w:pict></w:r>`
	src := buildPackage(t, map[string]string{
		mainDocumentPart: documentXML(`<w:p w:rsidR="00A1">` + run("{patient_") + textBox + run("name}") + `</w:p>` + para(run("tail"))),
	})

	names, err := Placeholders(src)
	require.NoError(t, err)
	assert.Equal(t, []string{"case_id", "patient_name"}, names)

	out, err := RenderPackage(src, Tokens{"patient_name": "Jane", "case_id": "CLM-5"}, RenderOptions{Strict: true})
	require.NoError(t, err)

	doc := readPart(t, out, mainDocumentPart)
	assert.Contains(t, doc, `<w:t xml:space="preserve">Jane</w:t>`)
	assert.Contains(t, doc, `<w:t xml:space="preserve">CLM-5</w:t>`)
	assert.Contains(t, doc, `<w:t xml:space="preserve">tail</w:t>`)
	assert.NotContains(t, doc, "{patient_")
	assert.NotContains(t, doc, "name}")
	assert.Less(t, strings.Index(doc, "Jane"), strings.Index(doc, "CLM-5"))
}

func TestParagraphs_SkipsEmptyAndPropertyTags(t *testing.T) {
	data := []byte(`<w:p/><w:p><w:pPr><w:jc w:val="center"/></w:pPr>` + run("a") + run("b") + `</w:p>` + run("loose"))

	got := paragraphs(data)
	require.Len(t, got, 2)
	text, _ := got[0].text()
	assert.Equal(t, "ab", text)
	text, _ = got[1].text()
	assert.Equal(t, "loose", text)
}

func TestRenderPackage_EmptyValue(t *testing.T) {
	src := buildPackage(t, map[string]string{
		mainDocumentPart: documentXML(para(run("Discharge: [{discharge_date}]"))),
	})

	out, err := RenderPackage(src, Tokens{"discharge_date": ""}, RenderOptions{Strict: true})
	require.NoError(t, err)

	doc := readPart(t, out, mainDocumentPart)
	assert.Contains(t, doc, "Discharge: []")
	assert.NotContains(t, doc, "null")
	assert.NotContains(t, doc, "undefined")
	assert.NotContains(t, doc, "{discharge_date}")
}

func TestRenderPackage_UnknownTokenRendersEmpty(t *testing.T) {
	src := buildPackage(t, map[string]string{
		mainDocumentPart: documentXML(para(run("X{not_a_token}Y"))),
	})

	out, err := RenderPackage(src, Tokens{}, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, readPart(t, out, mainDocumentPart), ">XY<")
}

func TestRenderPackage_StrictRejectsUnknownTokens(t *testing.T) {
	src := buildPackage(t, map[string]string{
		mainDocumentPart: documentXML(para(run("{zeta} {alpha} {patient_name}"))),
	})

	_, err := RenderPackage(src, Tokens{"patient_name": "Jane"}, RenderOptions{Strict: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolvedToken)

	var rerr *RenderError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, []string{"alpha", "zeta"}, rerr.Tokens)
}

func TestRenderPackage_EscapesValuesAndBreaksLines(t *testing.T) {
	src := buildPackage(t, map[string]string{
		mainDocumentPart: documentXML(para(run("{observations}"))),
	})

	out, err := RenderPackage(src, Tokens{"observations": "A & B <x>\nsecond line"}, RenderOptions{})
	require.NoError(t, err)

	doc := readPart(t, out, mainDocumentPart)
	assert.Contains(t, doc, `<w:t xml:space="preserve">A &amp; B &lt;x&gt;</w:t><w:br/><w:t xml:space="preserve">second line</w:t>`)
	require.NoError(t, checkWellFormed([]byte(doc)))
}

func TestRenderPackage_UnescapesExistingEntities(t *testing.T) {
	src := buildPackage(t, map[string]string{
		mainDocumentPart: documentXML(para(run("Address &amp; Ph {patient_mobile}"))),
	})

	out, err := RenderPackage(src, Tokens{"patient_mobile": "98765"}, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, readPart(t, out, mainDocumentPart), "Address &amp; Ph 98765")
}

func TestRenderPackage_HeadersAndFooters(t *testing.T) {
	hdr := `<w:hdr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` + para(run("{insurance_company}")) + `</w:hdr>`
	src := buildPackage(t, map[string]string{
		mainDocumentPart:   documentXML(para(run("body"))),
		"word/header1.xml": hdr,
	})

	out, err := RenderPackage(src, Tokens{"insurance_company": "Care Health"}, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, readPart(t, out, "word/header1.xml"), "Care Health")
	assert.Contains(t, readPart(t, out, mainDocumentPart), "body")
}

func TestRenderPackage_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  func(t *testing.T) []byte
		kind error
	}{
		{
			name: "not a zip archive",
			src:  func(t *testing.T) []byte { return []byte("<html>legacy</html>") },
			kind: ErrUnsupportedFormat,
		},
		{
			name: "truncated archive",
			src: func(t *testing.T) []byte {
				pkg := buildPackage(t, map[string]string{mainDocumentPart: documentXML("")})
				return pkg[:len(pkg)/2]
			},
			kind: ErrMalformedPackage,
		},
		{
			name: "missing main document",
			src: func(t *testing.T) []byte {
				return buildPackage(t, map[string]string{"word/styles.xml": "<x/>"})
			},
			kind: ErrMalformedPackage,
		},
		{
			name: "malformed xml",
			src: func(t *testing.T) []byte {
				return buildPackage(t, map[string]string{mainDocumentPart: `<w:document><w:body><w:p>`})
			},
			kind: ErrMalformedPackage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := RenderPackage(tt.src(t), Tokens{}, RenderOptions{})
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestRenderPackage_RoundTripResolvesEveryToken(t *testing.T) {
	var body strings.Builder
	for i, name := range TokenNames {
		// Alternate between whole and split placeholders.
		if i%2 == 0 {
			body.WriteString(para(run(name + ": {" + name + "}")))
			continue
		}
		half := len(name) / 2
		body.WriteString(para(run(name+": {"+name[:half]), run(name[half:]+"}")))
	}
	src := buildPackage(t, map[string]string{mainDocumentPart: documentXML(body.String())})

	before, err := Placeholders(src)
	require.NoError(t, err)
	assert.Len(t, before, len(TokenNames))

	out, err := RenderPackage(src, BuildTokens(nil, Input{}), RenderOptions{Strict: true})
	require.NoError(t, err)

	after, err := Placeholders(out)
	require.NoError(t, err)
	assert.Empty(t, after)
	require.NoError(t, checkWellFormed([]byte(readPart(t, out, mainDocumentPart))))
}
