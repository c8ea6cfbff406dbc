package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"sankey/internal/chart"
	"sankey/internal/logging"
	"sankey/internal/model"
	"sankey/internal/render"
)

//go:embed static/*
var staticFS embed.FS

//go:embed help.md
var helpMD string

// maxDocumentBytes caps the size of a posted document.
const maxDocumentBytes = 1 << 20

// Server renders documents posted over HTTP.
type Server struct {
	opts chart.Options
}

// NewServer creates a Server that builds charts with opts.
func NewServer(opts chart.Options) *Server {
	return &Server{opts: opts}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	subFS, _ := fs.Sub(staticFS, "static")
	mux.Handle("/", http.FileServer(http.FS(subFS)))

	// API Endpoints
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/layout", s.handleLayout)
	mux.HandleFunc("/api/palette", s.handlePalette)
	mux.HandleFunc("/api/help", handleHelp)

	return withRequestID(mux)
}

// RequestIDHeader carries the ID assigned to every request. Log records for
// the request include the same ID.
const RequestIDHeader = "X-Request-Id"

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set(RequestIDHeader, id)

		start := time.Now()
		next.ServeHTTP(w, r)
		logging.Logger().Debug("request served", "id", id, "method", r.Method, "path", r.URL.Path, "elapsed", time.Since(start))
	})
}

// StartServer serves on addr until the listener fails.
func StartServer(addr string, opts chart.Options) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewServer(opts).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	url := addr
	if strings.HasPrefix(url, ":") {
		url = "localhost" + url
	}
	fmt.Printf("Starting sankey web server at http://%s\n", url)
	fmt.Printf("Go to http://%s in your browser.\n", url)
	logging.Logger().Info("web server listening", "addr", addr)

	return srv.ListenAndServe()
}

// apiError is the JSON body returned for rejected documents.
type apiError struct {
	Error   string `json:"error"`
	Line    int    `json:"line,omitempty"`
	Context string `json:"context,omitempty"` // the offending line with its neighbours
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// buildFromRequest reads the posted document and builds it, applying a
// curve query parameter when present.
func (s *Server) buildFromRequest(w http.ResponseWriter, r *http.Request) (*chart.Chart, bool) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "POST a document", http.StatusMethodNotAllowed)
		return nil, false
	}

	opts := s.opts
	if q := r.URL.Query().Get("curve"); q != "" {
		curve, err := render.ParseCurve(q)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
			return nil, false
		}
		opts.Curve = curve
	}

	doc, err := model.ParseDocument(http.MaxBytesReader(w, r.Body, maxDocumentBytes))
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeJSON(w, http.StatusRequestEntityTooLarge,
				apiError{Error: fmt.Sprintf("document exceeds %d bytes", tooBig.Limit)})
			return nil, false
		}
		writeJSON(w, http.StatusUnprocessableEntity, apiError{Error: err.Error()})
		return nil, false
	}

	c, err := chart.Build(doc, opts)
	if err != nil {
		body := apiError{Error: err.Error()}
		var lineErr model.LineError
		if errors.As(err, &lineErr) {
			body.Line = lineErr.LineNumber()
			body.Context = model.LinesContext(doc.Lines(), body.Line).Format()
		}
		logging.Logger().Debug("document rejected", "id", w.Header().Get(RequestIDHeader), "err", err)
		writeJSON(w, http.StatusUnprocessableEntity, body)
		return nil, false
	}
	return c, true
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	c, ok := s.buildFromRequest(w, r)
	if !ok {
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "png":
		writeImage(w, "image/png", c.RenderPNG)
	case "svg":
		writeImage(w, "image/svg+xml", c.RenderSVG)
	default:
		writeJSON(w, http.StatusBadRequest, apiError{Error: fmt.Sprintf("unknown format %q", format)})
	}
}

// writeImage renders fully before writing so that a failure can still be
// answered with a 500.
func writeImage(w http.ResponseWriter, contentType string, draw func(io.Writer) error) {
	var buf bytes.Buffer
	if err := draw(&buf); err != nil {
		logging.Logger().Warn("render failed", "id", w.Header().Get(RequestIDHeader), "err", err)
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "render failed: " + err.Error()})
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	c, ok := s.buildFromRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	p := s.opts.Palette
	if len(p) == 0 {
		p = model.DefaultPalette()
	}
	hex := make([]string, len(p))
	for i, c := range p {
		hex[i] = c.Hex()
	}
	writeJSON(w, http.StatusOK, hex)
}

func handleHelp(w http.ResponseWriter, r *http.Request) {
	text := strings.ReplaceAll(helpMD, "{{VERSION}}", model.Version)

	w.Header().Set("Content-Type", "text/markdown")
	w.Write([]byte(text))
}
