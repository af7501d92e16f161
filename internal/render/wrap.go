package render

import (
	"bytes"
	"fmt"
	"text/template"
)

// WrapData is the data passed to a wrapping template.
type WrapData struct {
	// Name is the table name.
	Name string
	// Func is the camelized table name.
	Func     string
	Variable string
	// Kind is the Go spelling of the integer kind, e.g. "int32".
	Kind string
	// Body is the rendered decision tree.
	Body string
}

// ParseWrap parses a wrapping template.
func ParseWrap(text string) (*template.Template, error) {
	tmpl, err := template.New("wrap").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing wrap template: %w", err)
	}

	return tmpl, nil
}

// Wrap executes the wrapping template text with data. An empty template
// returns the body unchanged.
func Wrap(text string, data WrapData) (string, error) {
	if text == "" {
		return data.Body, nil
	}

	tmpl, err := ParseWrap(text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing wrap template: %w", err)
	}

	return buf.String(), nil
}
