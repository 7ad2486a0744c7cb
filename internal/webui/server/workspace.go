package server

import (
	"net/http"
	"strconv"
	"strings"

	"vincode/internal/workspace"
)

// idRequest is the body of every command that targets a single node.
type idRequest struct {
	ID string `json:"id"`
}

type createFileRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ParentID string `json:"parentId"`
}

type createFolderRequest struct {
	Name     string `json:"name"`
	ParentID string `json:"parentId"`
}

type renameRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type moveRequest struct {
	ID       string `json:"id"`
	ParentID string `json:"parentId"`
}

type contentRequest struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

type searchRequest struct {
	Query string `json:"query"`
}

func (s *Server) stateHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Store.Snapshot())
}

// treeHandler returns the sidebar tree. ?q= filters it without touching the
// stored search query; without q the stored query applies.
func (s *Server) treeHandler(w http.ResponseWriter, r *http.Request) {
	if q, ok := r.URL.Query()["q"]; ok {
		writeJSON(w, http.StatusOK, workspace.Filter(s.Store.Snapshot().Tree, strings.Join(q, " ")))
		return
	}
	writeJSON(w, http.StatusOK, s.Store.FilteredTree())
}

func (s *Server) fileHandler(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	st := s.Store.Snapshot()
	n := workspace.Find(st.Tree, id)
	if n == nil {
		writeError(w, workspace.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"node":           n,
		"path":           workspace.PathOf(st.Tree, id),
		"editorLanguage": workspace.EditorLanguage(n.Language),
	})
}

func (s *Server) quickOpenHandler(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 20
	}
	writeJSON(w, http.StatusOK, s.Store.QuickOpen(r.URL.Query().Get("q"), limit))
}

// createFileHandler mirrors the "new file" dialog: the base name is checked
// against the dialog rules and the file type's extension is appended.
func (s *Server) createFileHandler(w http.ResponseWriter, r *http.Request) {
	var req createFileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	ft, ok := workspace.LookupFileType(req.Type)
	if !ok {
		writeError(w, &workspace.NameError{Msg: "unknown file type " + strconv.Quote(req.Type)})
		return
	}
	if err := workspace.ValidateFileBaseName(req.Name); err != nil {
		writeError(w, err)
		return
	}
	id, err := s.Store.CreateFile(req.Name+ft.Ext, ft.Value, req.ParentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) createFolderHandler(w http.ResponseWriter, r *http.Request) {
	var req createFolderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := workspace.ValidateFolderName(req.Name); err != nil {
		writeError(w, err)
		return
	}
	id, err := s.Store.CreateFolder(strings.TrimSpace(req.Name), req.ParentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) duplicateHandler(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	id, err := s.Store.DuplicateFile(req.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// idCommand adapts a single-id store command to a handler answering with
// the new snapshot.
func (s *Server) idCommand(cmd func(id string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req idRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}
		if err := cmd(req.ID); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s.Store.Snapshot())
	}
}

func (s *Server) deleteHandler(w http.ResponseWriter, r *http.Request) {
	s.idCommand(s.Store.DeleteNode)(w, r)
}

func (s *Server) openHandler(w http.ResponseWriter, r *http.Request) {
	s.idCommand(s.Store.OpenFile)(w, r)
}

func (s *Server) closeHandler(w http.ResponseWriter, r *http.Request) {
	s.idCommand(s.Store.CloseFile)(w, r)
}

func (s *Server) activeHandler(w http.ResponseWriter, r *http.Request) {
	s.idCommand(s.Store.SetActiveFile)(w, r)
}

func (s *Server) toggleHandler(w http.ResponseWriter, r *http.Request) {
	s.idCommand(s.Store.ToggleFolder)(w, r)
}

func (s *Server) mainHandler(w http.ResponseWriter, r *http.Request) {
	s.idCommand(s.Store.SetMainHTMLFile)(w, r)
}

func (s *Server) renameHandler(w http.ResponseWriter, r *http.Request) {
	var req renameRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.Store.RenameNode(req.ID, req.Name); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Store.FileByID(req.ID))
}

func (s *Server) moveHandler(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.Store.MoveNode(req.ID, req.ParentID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Store.FileByID(req.ID))
}

func (s *Server) contentHandler(w http.ResponseWriter, r *http.Request) {
	var req contentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.Store.UpdateFileContent(req.ID, req.Content); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Store.FileByID(req.ID))
}

func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	s.Store.SetSearchQuery(req.Query)
	writeJSON(w, http.StatusOK, s.Store.FilteredTree())
}

func (s *Server) resetHandler(w http.ResponseWriter, r *http.Request) {
	s.Store.ResetFiles()
	writeJSON(w, http.StatusOK, s.Store.Snapshot())
}
