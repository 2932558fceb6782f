package report

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedFormat means the template is not a .docx package.
	ErrUnsupportedFormat = errors.New("unsupported template format, only .docx is supported")
	// ErrMalformedPackage means the archive or one of its XML parts cannot be parsed.
	ErrMalformedPackage = errors.New("malformed document package")
	// ErrUnresolvedToken means strict rendering met placeholders with no value.
	ErrUnresolvedToken = errors.New("unresolved template token")
	// ErrTemplateFetch means the template bytes could not be loaded.
	ErrTemplateFetch = errors.New("template fetch failed")
)

// RenderError describes why a packaged template could not be rendered.
// errors.Is matches both Kind and Cause.
type RenderError struct {
	Kind   error
	Part   string
	Tokens []string
	Cause  error
}

func (e *RenderError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Part != "" {
		fmt.Fprintf(&b, ": %s", e.Part)
	}
	if len(e.Tokens) > 0 {
		fmt.Fprintf(&b, ": %s", strings.Join(e.Tokens, ", "))
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *RenderError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}
