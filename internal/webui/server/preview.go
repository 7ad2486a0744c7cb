package server

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"vincode/internal/export"
	"vincode/internal/metrics"
	"vincode/internal/preview"
	"vincode/internal/workspace"
)

// maxUploadBytes bounds a multipart upload request.
const maxUploadBytes = 8 << 20

// previewHandler serves the assembled preview document. ?id= previews a
// specific file instead of the main HTML file; markdown files are rendered.
func (s *Server) previewHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	st := s.Store.Snapshot()
	var doc string
	if id := r.URL.Query().Get("id"); id != "" {
		n := workspace.Find(st.Tree, id)
		switch {
		case !n.IsFile():
			writeError(w, workspace.ErrNotFound)
			return
		case n.Language == "markdown":
			doc = preview.MarkdownDocument(n.Name, n.Content)
		default:
			doc = preview.Assemble(st.Tree, id)
		}
	} else {
		doc = preview.FromState(st)
	}
	metrics.RecordPreview(time.Since(start))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(doc))
}

func (s *Server) frameHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, preview.DeviceFrame(s.Store.Snapshot().Settings.DeviceView))
}

func (s *Server) exportHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := export.WriteZip(&buf, s.Store.Snapshot().Tree); err != nil {
		writeJSON(w, http.StatusInternalServerError, errJSON(err))
		return
	}
	metrics.RecordExport(int64(buf.Len()))
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.ArchiveName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = w.Write(buf.Bytes())
}

type uploadResult struct {
	Name  string `json:"name"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

// uploadHandler accepts one or more "file" parts and creates each file with
// its content in a single command. parentId is an optional form field.
func (s *Server) uploadHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, err)
		return
	}
	parentID := r.FormValue("parentId")
	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no file parts"})
		return
	}
	results := make([]uploadResult, 0, len(files))
	created := 0
	for _, fh := range files {
		res := uploadResult{Name: fh.Filename}
		content, err := readPart(fh)
		if err == nil {
			res.ID, err = s.Store.UploadFile(fh.Filename, content, parentID)
		}
		if err != nil {
			res.Error = err.Error()
		} else {
			created++
		}
		results = append(results, res)
	}
	code := http.StatusCreated
	if created == 0 {
		code = http.StatusUnprocessableEntity
	}
	writeJSON(w, code, results)
}

func readPart(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(f); err != nil {
		return "", err
	}
	return buf.String(), nil
}
