package server

import (
	"context"
	"errors"
	"io/fs"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"vincode/internal/metrics"
	"vincode/internal/system"
	webembed "vincode/internal/webui/embed"
	"vincode/internal/workspace"
)

// Server exposes one workspace store over HTTP.
type Server struct {
	Addr  string
	Store *workspace.Store
}

func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: s.Addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	system.Logger.Info("webui server listening", "addr", s.Addr)
	return srv.ListenAndServe()
}

// Handler builds the gin engine. Tests drive it through httptest.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(recordMetrics)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	s.mountAPIGin(r)
	mountEmbeddedUIGin(r)
	return r
}

// recordMetrics reports every request under its route pattern so ids in
// query strings do not blow up label cardinality.
func recordMetrics(c *gin.Context) {
	start := time.Now()
	c.Next()
	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	metrics.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
}

func (s *Server) mountAPIGin(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/health", gin.WrapF(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}))
	api.GET("/version", gin.WrapF(versionHandler))
	api.GET("/schema", gin.WrapF(schemaHandler))

	// State and derived views
	api.GET("/state", gin.WrapF(s.stateHandler))
	api.GET("/tree", gin.WrapF(s.treeHandler))
	api.GET("/file", gin.WrapF(s.fileHandler))
	api.GET("/quickopen", gin.WrapF(s.quickOpenHandler))
	api.GET("/filetypes", gin.WrapF(fileTypesHandler))

	// Tree commands
	api.POST("/files", gin.WrapF(s.createFileHandler))
	api.POST("/folders", gin.WrapF(s.createFolderHandler))
	api.POST("/delete", gin.WrapF(s.deleteHandler))
	api.POST("/rename", gin.WrapF(s.renameHandler))
	api.POST("/move", gin.WrapF(s.moveHandler))
	api.POST("/duplicate", gin.WrapF(s.duplicateHandler))
	api.PUT("/content", gin.WrapF(s.contentHandler))
	api.POST("/upload", gin.WrapF(s.uploadHandler))
	api.POST("/reset", gin.WrapF(s.resetHandler))

	// View commands
	api.POST("/open", gin.WrapF(s.openHandler))
	api.POST("/close", gin.WrapF(s.closeHandler))
	api.POST("/active", gin.WrapF(s.activeHandler))
	api.POST("/toggle", gin.WrapF(s.toggleHandler))
	api.POST("/main", gin.WrapF(s.mainHandler))
	api.PUT("/search", gin.WrapF(s.searchHandler))

	// Settings
	api.GET("/settings", gin.WrapF(s.settingsHandler))
	api.PATCH("/settings", gin.WrapF(s.settingsPatchHandler))
	api.POST("/zoom", gin.WrapF(s.zoomHandler))

	// Preview and export
	api.GET("/preview", gin.WrapF(s.previewHandler))
	api.GET("/preview/frame", gin.WrapF(s.frameHandler))
	api.GET("/export", gin.WrapF(s.exportHandler))

	// Live updates and the simulated terminal
	api.GET("/events", gin.WrapF(s.eventsHandler))
	api.GET("/term/ws", gin.WrapF(s.terminalWSHandler))
}

// mountEmbeddedUIGin serves embedded SPA at all non-/api GET routes with index fallback.
func mountEmbeddedUIGin(r *gin.Engine) {
	dist, err := fs.Sub(webembed.DistFS, "dist")
	if err != nil {
		r.NoRoute(func(c *gin.Context) {
			if isAPIPath(c.Request.URL.Path) {
				c.Status(http.StatusNotFound)
				return
			}
			c.String(http.StatusNotFound, "webui assets not found. Build frontend into internal/webui/embed/dist and recompile.")
		})
		return
	}
	httpFS := http.FS(dist)
	r.NoRoute(func(c *gin.Context) {
		// Do not hijack API routes
		if isAPIPath(c.Request.URL.Path) {
			c.Status(http.StatusNotFound)
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}
		p := strings.TrimPrefix(c.Request.URL.Path, "/")
		if p != "" && p != "index.html" {
			if f, err := httpFS.Open(p); err == nil {
				_ = f.Close()
				if ct := mime.TypeByExtension(filepath.Ext(p)); ct != "" {
					c.Header("Content-Type", ct)
				}
				c.FileFromFS(p, httpFS)
				return
			}
		}
		// SPA fallback; index.html is read directly because http.FileServer
		// redirects any request for it to the directory.
		b, err := fs.ReadFile(dist, "index.html")
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				c.String(http.StatusNotFound, "index.html not found in embedded dist.")
				return
			}
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", b)
	})
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/")
}
