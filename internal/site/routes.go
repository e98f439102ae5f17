package site

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pankaj139/portfolio/internal/web"
)

// Register mounts the page, its fragments, health check and static assets.
// The engine must use s.Templates() as its HTML renderer.
func (s *Site) Register(r gin.IRouter) {
	r.GET("/", s.handlePage)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	fragments := r.Group("/fragments")
	fragments.GET("/projects", s.handleProjects)
	fragments.GET("/projects/:id", s.handleProject)
	fragments.GET("/overlay", s.handleOverlay)
	fragments.GET("/nav", s.handleNav)

	r.StaticFS("/static", http.FS(web.Static()))
}

func (s *Site) handlePage(c *gin.Context) {
	var buf bytes.Buffer
	if err := s.Render(&buf, ParseSelection(c.Request.URL.Query()), QueryLinker{}); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Site) handleProjects(c *gin.Context) {
	view, err := s.ProjectsFor(ParseSelection(c.Request.URL.Query()), QueryLinker{})
	if err != nil {
		renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "projects-fragment", view)
}

func (s *Site) handleProject(c *gin.Context) {
	sel := ParseSelection(c.Request.URL.Query()).WithProject(c.Param("id"))
	view, err := s.OverlayFor(sel, QueryLinker{})
	if err != nil {
		renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "overlay-fragment", view)
}

func (s *Site) handleOverlay(c *gin.Context) {
	view, err := s.OverlayFor(ParseSelection(c.Request.URL.Query()), QueryLinker{})
	if err != nil {
		renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "overlay-fragment", view)
}

func (s *Site) handleNav(c *gin.Context) {
	c.HTML(http.StatusOK, "header", s.HeaderFor(ParseSelection(c.Request.URL.Query()), QueryLinker{}))
}
