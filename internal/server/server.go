// Package server exposes the list maintenance endpoints used by catalog
// tooling: file upload and allow-listed list saving. It also serves the list
// files themselves so remote browsers can load them over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"mirrorpick/internal/eventbus"
)

const (
	uploadDir      = "file"
	maxUploadBytes = 512 << 20
)

var unsafeChars = regexp.MustCompile(`[^a-z0-9.]`)

// Server handles the maintenance endpoints rooted at a data directory
type Server struct {
	root         string
	allowedFiles []string
	bus          eventbus.EventBus
	now          func() time.Time
}

// New creates a server writing under root. Only names in allowedFiles can be
// written through /save.
func New(root string, allowedFiles []string, bus eventbus.EventBus) *Server {
	if bus == nil {
		bus = eventbus.Null{}
	}
	return &Server{
		root:         root,
		allowedFiles: allowedFiles,
		bus:          bus,
		now:          time.Now,
	}
}

// Handler returns the routed HTTP handler
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/upload", s.Upload)
	mux.HandleFunc("/save", s.Save)
	mux.Handle("/", http.FileServer(http.Dir(s.root)))
	return mux
}

type response struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	FilePath string `json:"filePath,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// SafeName lower-cases name and replaces everything but [a-z0-9.] with '_'
func SafeName(name string) string {
	return unsafeChars.ReplaceAllString(strings.ToLower(name), "_")
}

// Upload handles POST /upload with a multipart "file" field
func (s *Server) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, response{Message: "No file uploaded"})
		return
	}
	defer file.Close()

	dir := filepath.Join(s.root, uploadDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("Failed to create upload directory: %v", err)
		writeJSON(w, http.StatusInternalServerError, response{Message: "Failed to store file"})
		return
	}

	name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), SafeName(header.Filename))
	written, err := storeFile(filepath.Join(dir, name), file)
	if err != nil {
		log.Printf("Failed to store %s: %v", name, err)
		writeJSON(w, http.StatusInternalServerError, response{Message: "Failed to store file"})
		return
	}

	relative := "/" + uploadDir + "/" + name
	log.Printf("Stored upload %s (%d bytes)", relative, written)
	s.bus.Publish(eventbus.FileUploadedEvent{Path: relative, Size: written})
	writeJSON(w, http.StatusOK, response{Success: true, FilePath: relative})
}

// storeFile copies src to path. A failed copy leaves no partial file behind.
func storeFile(path string, src io.Reader) (int64, error) {
	dst, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	written, err := io.Copy(dst, src)
	if err == nil {
		err = dst.Close()
	} else {
		dst.Close()
	}
	if err != nil {
		os.Remove(path)
		return 0, err
	}
	return written, nil
}

type saveRequest struct {
	Filename string          `json:"filename"`
	Data     json.RawMessage `json:"data"`
}

// Save handles POST /save, writing data as indented JSON to an allow-listed file
func (s *Server) Save(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Message: "Invalid JSON body"})
		return
	}
	if req.Filename == "" || isEmptyData(req.Data) {
		writeJSON(w, http.StatusBadRequest, response{Message: "Missing filename or data"})
		return
	}
	if !slices.Contains(s.allowedFiles, req.Filename) {
		writeJSON(w, http.StatusForbidden, response{Message: "File not allowed"})
		return
	}

	// Indent the raw document so key order and number formatting survive
	var out bytes.Buffer
	if err := json.Indent(&out, req.Data, "", "    "); err != nil {
		writeJSON(w, http.StatusBadRequest, response{Message: "Invalid data"})
		return
	}

	if err := os.WriteFile(filepath.Join(s.root, req.Filename), out.Bytes(), 0644); err != nil {
		log.Printf("Error writing file: %v", err)
		writeJSON(w, http.StatusInternalServerError, response{Message: "Failed to write file"})
		return
	}

	log.Printf("Successfully updated %s", req.Filename)
	s.bus.Publish(eventbus.ListSavedEvent{Filename: req.Filename})
	writeJSON(w, http.StatusOK, response{Success: true, Message: req.Filename + " updated successfully!"})
}

// isEmptyData treats absent, null, false, 0 and "" as missing, matching the
// truthiness check the list editor relies on
func isEmptyData(raw json.RawMessage) bool {
	switch strings.TrimSpace(string(raw)) {
	case "", "null", "false", "0", `""`:
		return true
	}
	return false
}
