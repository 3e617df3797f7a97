package handlers

import (
	"github.com/labstack/echo/v4"
)

const indexPagePath = "web/index.html"

// IndexHandler serves the static front-end page at the root path. The page
// itself is an opaque client of the JSON API.
type IndexHandler struct{}

// NewIndexHandler creates a new index handler
func NewIndexHandler() *IndexHandler {
	return &IndexHandler{}
}

// Index serves the tracker page
func (h *IndexHandler) Index(c echo.Context) error {
	return c.File(indexPagePath)
}
