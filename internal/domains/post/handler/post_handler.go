package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/response"
)

type PostHandler struct {
	service post.Service
}

func NewPostHandler(svc post.Service) *PostHandler {
	return &PostHandler{service: svc}
}

// List - GET /api/publicacion
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to list posts")
		return
	}

	resp := make([]post.PostResponse, len(posts))
	for i, p := range posts {
		resp[i] = *p.ToResponse()
	}

	response.Success(c, http.StatusOK, resp)
}

// GetByID - GET /api/publicacion/:id
func (h *PostHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p.ToResponse())
}

// Create - POST /api/publicacion
func (h *PostHandler) Create(c *gin.Context) {
	var req post.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "post payload must not be null or malformed")
		return
	}

	if err := req.Validate(); err != nil {
		h.writeError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	location := fmt.Sprintf("/api/publicacion/%d", created.ID)
	response.Created(c, location, created.ToResponse())
}

// Update - PUT /api/publicacion/:id
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req post.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "post payload must not be null or malformed")
		return
	}

	if err := req.Validate(); err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		h.writeError(c, err)
		return
	}

	response.NoContent(c)
}

// Delete - DELETE /api/publicacion/:id
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.NoContent(c)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "post id must be a positive integer")
		return 0, false
	}
	return id, true
}

func (h *PostHandler) writeError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		response.ValidationError(c, fieldErrs)
		return
	}

	status := post.ToHTTPStatus(err)
	code := post.ToErrorCode(err)

	switch status {
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	case http.StatusBadRequest:
		response.ErrorWithDetails(c, status, code, err.Error(), gin.H{code: err.Error()})
	default:
		response.InternalServerError(c, err.Error())
	}
}
