// Package graphiql serves the embedded GraphiQL playground page, pointed at
// a configurable graphql endpoint. Only mounted outside production.
package graphiql

import (
	"bytes"
	_ "embed"
	"net/http"
	"text/template"
)

//go:embed graphiql.html
var page string

// New returns a handler rendering the playground against the given endpoint.
func New(endpoint string) http.HandlerFunc {
	templ := template.Must(template.New("graphiql").Parse(page))
	return func(w http.ResponseWriter, req *http.Request) {
		var buffer bytes.Buffer
		if err := templ.Execute(&buffer, endpoint); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write(buffer.Bytes())
	}
}
