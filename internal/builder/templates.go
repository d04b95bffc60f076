package builder

import (
	"bytes"
	"embed"
	"text/template"

	"github.com/masterminds/sprig"

	"github.com/pivotal-cf/css-ease-presets/pkg/ease"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

const (
	variablesTemplate = "ease-vars.css.tmpl"
	classesTemplate   = "ease-classes.css.tmpl"
	moduleTemplate    = "module.mjs.tmpl"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

var templates = template.Must(
	template.New("eases").Funcs(sprig.TxtFuncMap()).ParseFS(templateFiles, "templates/*.tmpl"),
)

type templateData struct {
	Eases ease.Table
	JSON  string
}

// RenderVariables renders ease-vars.css, one custom property per ease.
func RenderVariables(table ease.Table) ([]byte, error) {
	return render(variablesTemplate, templateData{Eases: table})
}

// RenderClasses renders ease-classes.css, an animation and a transition
// utility class per ease.
func RenderClasses(table ease.Table) ([]byte, error) {
	return render(classesTemplate, templateData{Eases: table})
}

func RenderJSON(table ease.Table) ([]byte, error) {
	buf, err := table.MarshalIndent()
	if err != nil {
		return nil, err
	}
	return append(buf, '\n'), nil
}

// RenderModule renders an ES module with the table as its named and default export.
func RenderModule(table ease.Table) ([]byte, error) {
	buf, err := table.MarshalIndent()
	if err != nil {
		return nil, err
	}
	return render(moduleTemplate, templateData{Eases: table, JSON: string(buf)})
}

func render(name string, data templateData) ([]byte, error) {
	var buf bytes.Buffer
	err := templates.ExecuteTemplate(&buf, name, data)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
