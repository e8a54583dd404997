package templates

import (
	"bytes"
	"html/template"
	"log"
)

// pageDocumentTmpl wraps a page body. Stylesheets are linked from the page
// directory one level below the site root.
var pageDocumentTmpl = template.Must(template.New("pageDocument").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="../styles/globals.css">
  <link rel="stylesheet" href="../styles/components.css">
</head>
<body>
  {{.Body}}
</body>
</html>`))

type pageDocumentData struct {
	Title string
	Body  template.HTML
}

// RenderPageDocument wraps rendered body markup in a full HTML document
func RenderPageDocument(title, body string) string {
	var buf bytes.Buffer
	err := pageDocumentTmpl.Execute(&buf, pageDocumentData{
		Title: title,
		Body:  template.HTML(body),
	})
	if err != nil {
		log.Printf("ERROR: Failed to execute pageDocument template: %v", err)
		return ""
	}
	return buf.String()
}
