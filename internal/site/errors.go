package site

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pankaj139/portfolio/internal/projects"
)

func httpStatus(err error) int {
	switch {
	case errors.Is(err, projects.ErrProjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, projects.ErrUnknownCompany):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// renderError answers a fragment request with an HTML error partial so
// HTMX can swap it in place of the content it asked for.
func renderError(c *gin.Context, err error) {
	status := httpStatus(err)
	msg := "Something went wrong. Please reload the page."
	if status != http.StatusInternalServerError {
		msg = err.Error()
	}
	_ = c.Error(err)
	c.HTML(status, "error-fragment", gin.H{"Message": msg})
}
