package notification

import (
	"bytes"
	"html/template"

	"eventpro/internal/pkg/errs"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// md renders email bodies. Without html.WithUnsafe goldmark drops raw HTML
// from the source and writes a "raw HTML omitted" comment in its place, so
// reply text typed by an admin cannot inject markup.
var md = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

var layout = template.Must(template.New("mail").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #e0e0e0; border-radius: 10px; background-color: #f9f9f9;">
<h2 style="color: #007bff; text-align: center;">Chào {{.Name}},</h2>
<div style="color: #333; font-size: 16px; line-height: 1.6;">{{.Body}}</div>
<p style="color: #333; font-size: 16px;">Trân trọng,</p>
<p style="color: #007bff; font-weight: bold; margin: 0;">EventPro Team</p>
<div style="text-align: center; padding-top: 20px; border-top: 1px solid #e0e0e0; margin-top: 20px; color: #777; font-size: 14px;">© EventPro. All rights reserved.</div>
</div>`))

type layoutData struct {
	Name string
	Body template.HTML
}

// renderHTML converts a markdown body to HTML and wraps it in the mail layout.
func renderHTML(name, markdown string) (string, error) {
	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return "", errs.Wrap(err, "render markdown")
	}

	var out bytes.Buffer
	if err := layout.Execute(&out, layoutData{Name: name, Body: template.HTML(body.String())}); err != nil {
		return "", errs.Wrap(err, "render layout")
	}
	return out.String(), nil
}
