package pdf

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"

	"github.com/tolentino2025/FireSafeITM-sub001/internal/forms"
)

// Branding carries the resolved company identity printed on the report.
type Branding struct {
	CompanyName  string
	LogoURL      string
	PrimaryColor string
}

// LogoConfig controls logo placement on the rendered document.
type LogoConfig struct {
	ShowLogo  bool
	Placement string // "header" or "footer"
}

// Document is the full input of one report rendering: title, raw form data,
// the normalized general information block, both signatures, branding and
// logo flags.
type Document struct {
	Title       string
	FormData    map[string]interface{}
	GeneralInfo forms.GeneralInformation
	Inspector   forms.SignatureBlock
	Client      forms.SignatureBlock
	Branding    Branding
	Logo        LogoConfig
}

// Renderer produces the report artifact bytes for a document. The archive
// workflow treats it as an opaque collaborator: a render error fails the
// attempt verbatim and no partial record is created.
type Renderer interface {
	Render(ctx context.Context, doc Document) ([]byte, error)
}

// RenderBase64 runs the renderer and wraps the artifact as a base64 payload,
// the encoding used to ship the document inside a single JSON archive
// request. Both the download path and the archive path consume the same
// renderer from the same inputs.
func RenderBase64(ctx context.Context, r Renderer, doc Document) (string, error) {
	raw, err := r.Render(ctx, doc)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// TemplateRenderer renders the inspection report from an HTML template.
type TemplateRenderer struct {
	tmpl *template.Template
}

// NewTemplateRenderer builds the default renderer.
func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{
		tmpl: template.Must(template.New("report").Parse(reportTemplate)),
	}
}

// Render implements Renderer.
func (t *TemplateRenderer) Render(ctx context.Context, doc Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc.Title == "" {
		return nil, fmt.Errorf("render: document title is required")
	}

	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

const reportTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{if and .Logo.ShowLogo .Branding.LogoURL}}<img src="{{.Branding.LogoURL}}" alt="{{.Branding.CompanyName}}" class="logo-{{.Logo.Placement}}">{{end}}
<h1>{{.Title}}</h1>
<h2>{{.Branding.CompanyName}}</h2>
<table>
<tr><td>Propriedade</td><td>{{.GeneralInfo.NomePropriedade}}</td></tr>
<tr><td>Endereço</td><td>{{.GeneralInfo.Endereco}}</td></tr>
<tr><td>Data da Inspeção</td><td>{{.GeneralInfo.DataInspecao}}</td></tr>
<tr><td>Tipo de Inspeção</td><td>{{.GeneralInfo.TipoInspecao}}</td></tr>
<tr><td>Inspetor</td><td>{{.GeneralInfo.NomeInspetor}} {{.GeneralInfo.LicencaInspetor}}</td></tr>
</table>
<h3>Itens</h3>
<dl>
{{range $k, $v := .FormData}}<dt>{{$k}}</dt><dd>{{$v}}</dd>
{{end}}</dl>
<h3>Assinaturas</h3>
<p>Inspetor: {{.Inspector.SignerName}} - {{.Inspector.SignerDate}}</p>
<p>Cliente: {{.Client.SignerName}} - {{.Client.SignerDate}}</p>
</body>
</html>
`
