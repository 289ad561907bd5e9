// Package api provides HTTP API capabilities for the statement pipeline.
// This is a capability module that can be enabled via the CLI or used programmatically.
package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/mintbomb27/cc-wrapped/categorize"
	"github.com/mintbomb27/cc-wrapped/classify"
	"github.com/mintbomb27/cc-wrapped/extractor"
	"github.com/mintbomb27/cc-wrapped/report"
)

// Config holds the API server configuration
type Config struct {
	Port      string
	LogPrefix string
}

// DefaultConfig returns the default API configuration
func DefaultConfig() Config {
	return Config{
		Port:      ":8080",
		LogPrefix: "API: ",
	}
}

// Server represents the HTTP API server
type Server struct {
	config Config
	mux    *http.ServeMux
}

// New creates a new API server with the given configuration
func New(cfg Config) *Server {
	s := &Server{
		config: cfg,
		mux:    http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

// registerRoutes sets up the API endpoints
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/extract", s.handleExtract)
	s.mux.HandleFunc("/health", s.handleHealth)
}

// Handler returns the http.Handler for the server
// This allows the server to be used with custom http.Server configurations
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the HTTP server (blocking)
func (s *Server) Start() error {
	log.Printf("%sStarting server on %s", s.config.LogPrefix, s.config.Port)
	return http.ListenAndServe(s.config.Port, s.mux)
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// ExtractOptions holds the options for extraction
type ExtractOptions struct {
	Issuer     string
	Password   string
	WithReport bool
}

// ExtractResponse is the /extract reply body.
type ExtractResponse struct {
	Filename     string                 `json:"filename"`
	Transactions []classify.Transaction `json:"transactions"`
	Report       *report.Report         `json:"report,omitempty"`
}

// handleExtract handles statement extraction requests
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	log.Printf("%sReceived request from %s", s.config.LogPrefix, r.RemoteAddr)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse multipart form with 32MB max memory
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		log.Printf("%sError parsing multipart form: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not parse multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		log.Printf("%sError getting file from form: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not get uploaded file: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	// Read file into memory
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		log.Printf("%sError reading file bytes: %v", s.config.LogPrefix, err)
		http.Error(w, "Could not read file: "+err.Error(), http.StatusInternalServerError)
		return
	}

	opts := s.parseExtractOptions(r)

	raws := extractor.ProcessReader(bytes.NewReader(fileBytes), handler.Filename, opts.Password, opts.Issuer)
	transactions := classify.All(raws, categorize.Shared())

	response := ExtractResponse{
		Filename:     handler.Filename,
		Transactions: transactions,
	}
	if opts.WithReport {
		rep := report.Build(transactions)
		response.Report = &rep
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// parseExtractOptions extracts options from the HTTP request
func (s *Server) parseExtractOptions(r *http.Request) ExtractOptions {
	return ExtractOptions{
		Issuer:     coalesce(r.FormValue("issuer"), r.URL.Query().Get("issuer")),
		Password:   r.FormValue("password"),
		WithReport: r.FormValue("report") == "true" || r.URL.Query().Get("report") == "true",
	}
}

// coalesce returns the first non-empty string
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
