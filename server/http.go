package server

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/c360studio/casebridge/caseschema"
	"github.com/c360studio/casebridge/fieldmap"
	"github.com/c360studio/casebridge/ingest"
	"github.com/c360studio/casebridge/translate"
)

// maxRequestBodySize limits JSON POST body sizes. Uploads are capped
// separately by server.max_upload_bytes.
const maxRequestBodySize = 1 << 20 // 1 MB

//go:embed example_case.json
var exampleCase []byte

// fallbackIndexHTML is served when no UI directory is configured.
const fallbackIndexHTML = `<!DOCTYPE html>
<html>
<head><title>Casebridge</title></head>
<body>
<h1>Casebridge — CASE to IEEE SCD / ASN-CTDL Translator</h1>
<p>POST CASE JSON to <code>/translate/case-to-ieee</code> or
<code>/translate/case-to-asn</code>, or upload a JSON/CSV/Excel file to
<code>/translate/upload-file</code>.</p>
<p>See <a href="/field-mapping">/field-mapping</a> and
<a href="/example_case.json">/example_case.json</a>.</p>
</body>
</html>
`

// RegisterHTTPHandlers registers all handlers under the given prefix.
// The prefix should be the path segment without a trailing slash
// (usually empty for the root). Handlers are registered as:
//
//	GET  <prefix>/
//	GET  <prefix>/health
//	GET  <prefix>/metrics
//	GET  <prefix>/field-mapping
//	GET  <prefix>/example_case.json
//	POST <prefix>/translate/case-to-ieee
//	POST <prefix>/translate/case-to-asn
//	POST <prefix>/translate/upload-file
func (c *Component) RegisterHTTPHandlers(prefix string, mux *http.ServeMux) {
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix = prefix + "/"
	}

	mux.HandleFunc(prefix, c.instrument("index", c.handleIndex))
	mux.HandleFunc(prefix+"health", c.instrument("health", c.handleHealth))
	mux.Handle(prefix+"metrics", c.metrics.Handler())
	mux.HandleFunc(prefix+"field-mapping", c.instrument("field-mapping", c.handleFieldMapping))
	mux.HandleFunc(prefix+"example_case.json", c.instrument("example", c.handleExample))
	mux.HandleFunc(prefix+"translate/case-to-ieee", c.instrument("translate-ieee", c.translateHandler(translate.FormatSCD)))
	mux.HandleFunc(prefix+"translate/case-to-asn", c.instrument("translate-asn", c.translateHandler(translate.FormatCEASN)))
	mux.HandleFunc(prefix+"translate/upload-file", c.instrument("upload", c.handleUpload))
}

// ----------------------------------------------------------------------------
// POST /translate/case-to-ieee, POST /translate/case-to-asn
// ----------------------------------------------------------------------------

// translateHandler builds the handler for one fixed target format.
// Both endpoints share a contract: CASE JSON in, JSON-LD out,
// all-or-nothing.
func (c *Component) translateHandler(format translate.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body := http.MaxBytesReader(w, r.Body, maxRequestBodySize)
		var doc caseschema.Document
		if err := json.NewDecoder(body).Decode(&doc); err != nil {
			c.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid CASE JSON: %v", err))
			return
		}

		c.translateAndRespond(w, &doc, format)
	}
}

// translateAndRespond runs assembly and writes either the full graph
// or a descriptive rejection. Shared by the JSON and upload paths.
func (c *Component) translateAndRespond(w http.ResponseWriter, doc *caseschema.Document, format translate.Format) {
	graph, stats, err := translate.Assemble(doc, format)
	if err != nil {
		c.metrics.translationsTotal.WithLabelValues(string(format), "rejected").Inc()
		var verr *caseschema.ValidationError
		if errors.As(err, &verr) {
			c.writeError(w, http.StatusBadRequest, "Validation error: "+verr.Error())
			return
		}
		c.writeError(w, http.StatusBadRequest, "Translation error: "+err.Error())
		return
	}

	c.metrics.translationsTotal.WithLabelValues(string(format), "ok").Inc()
	if stats.DroppedRelations > 0 {
		c.metrics.droppedRelations.Add(float64(stats.DroppedRelations))
		c.logger.Warn("Dropped relations with unresolvable origin",
			"format", string(format),
			"dropped", stats.DroppedRelations,
		)
	}
	c.logger.Debug("Translation complete",
		"format", string(format),
		"items", stats.Items,
		"associations", stats.Associations,
	)

	writeJSON(w, http.StatusOK, graph)
}

// ----------------------------------------------------------------------------
// POST /translate/upload-file
// ----------------------------------------------------------------------------

// handleUpload accepts a multipart upload (JSON, CSV, or Excel),
// reshapes it into the three-part CASE structure, and translates it.
// Reshaping is best-effort: inputs that cannot be interpreted are
// rejected without partial output.
func (c *Component) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, c.cfg.Server.MaxUploadBytes)
	if err := r.ParseMultipartForm(c.cfg.Server.MaxUploadBytes); err != nil {
		c.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid multipart request: %v", err))
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		c.writeError(w, http.StatusBadRequest, "A \"file\" form field is required")
		return
	}
	defer file.Close()

	if fileHeader.Filename == "" {
		c.writeError(w, http.StatusBadRequest, "Filename is required")
		return
	}

	targetFormat := r.FormValue("target_format")
	if targetFormat == "" {
		targetFormat = string(translate.FormatSCD)
	}
	format, err := translate.ParseFormat(targetFormat)
	if err != nil {
		c.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		c.writeError(w, http.StatusBadRequest, fmt.Sprintf("Failed to read upload: %v", err))
		return
	}

	doc, err := c.ingest.Parse(fileHeader.Filename, content, ingest.Format(r.FormValue("input_format")))
	if err != nil {
		c.writeError(w, http.StatusBadRequest, fmt.Sprintf("Error converting file to CASE format: %v", err))
		return
	}

	c.translateAndRespond(w, doc, format)
}

// ----------------------------------------------------------------------------
// GET /field-mapping
// ----------------------------------------------------------------------------

// handleFieldMapping returns the static three-way field mapping
// between CASE 1.1, IEEE SCD, and ASN-CTDL.
func (c *Component) handleFieldMapping(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, fieldmap.Reference())
}

// ----------------------------------------------------------------------------
// GET /health, GET /example_case.json, GET /
// ----------------------------------------------------------------------------

func (c *Component) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "casebridge",
	})
}

func (c *Component) handleExample(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(exampleCase)
}

// handleIndex serves index.html from the configured UI directory, or
// the embedded fallback page.
func (c *Component) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if c.cfg.UI.Dir != "" {
		indexPath := filepath.Join(c.cfg.UI.Dir, "index.html")
		if _, err := os.Stat(indexPath); err == nil {
			http.ServeFile(w, r, indexPath)
			return
		}
		c.logger.Warn("UI index.html not found, serving fallback page", "path", indexPath)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, fallbackIndexHTML)
}

// ----------------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------------

// writeError writes a JSON error body with a descriptive detail
// message.
func (c *Component) writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeJSON marshals v as JSON and writes it to w with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Response is already partially written; nothing to do.
		_ = err
	}
}
