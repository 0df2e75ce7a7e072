package render

import (
	"embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/viant/firestore-gen/gen/credentials"
)

const (
	// DefaultPackage is the Java package of the generated class.
	DefaultPackage = "com.google.bazel.example.android"
	// DefaultClassName is the name of the generated class.
	DefaultClassName = "FirestoreConfig"

	templateName = "FirestoreConfig.java.tmpl"
)

//go:embed template/*
var templateFS embed.FS

// Data is the template input: the Java target plus the project credentials.
type Data struct {
	Package   string
	ClassName string
	credentials.Project
}

// Renderer renders the FirestoreConfig Java source.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded template.
func New() *Renderer {
	tmpl := template.Must(template.New(templateName).
		Funcs(template.FuncMap{"quote": Quote}).
		ParseFS(templateFS, "template/"+templateName))
	return &Renderer{tmpl: tmpl}
}

// Render writes the Java source for data to w.
func (r *Renderer) Render(w io.Writer, data *Data) error {
	if data == nil {
		return fmt.Errorf("render: data was nil")
	}
	if data.Package == "" {
		return fmt.Errorf("render: java package was empty")
	}
	if data.ClassName == "" {
		return fmt.Errorf("render: class name was empty")
	}
	if err := r.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render %s: %w", data.ClassName, err)
	}
	return nil
}

// Quote returns s as a Java string literal. Only characters that cannot
// appear verbatim inside a literal are escaped.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
