package handlers

import (
	"net/http"

	"classgrid/services/directory"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves the read-only teacher and class directories.
type DirectoryHandler struct {
	Service directory.DirectoryService
}

// NewDirectoryHandler constructs a DirectoryHandler.
func NewDirectoryHandler(svc directory.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{Service: svc}
}

// ListTeachersHandler handles GET /api/directory/teachers.
func (h *DirectoryHandler) ListTeachersHandler(c *gin.Context) {
	teachers, err := h.Service.ListTeachers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"teachers": teachers})
}

// ListClassesHandler handles GET /api/directory/classes.
func (h *DirectoryHandler) ListClassesHandler(c *gin.Context) {
	classes, err := h.Service.ListClasses(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"classes": classes})
}
