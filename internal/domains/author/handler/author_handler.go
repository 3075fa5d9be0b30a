package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/author"
	"blog-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// List - GET /api/author
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to list authors")
		return
	}

	resp := make([]author.AuthorResponse, len(authors))
	for i, a := range authors {
		resp[i] = *a.ToResponse()
	}

	response.Success(c, http.StatusOK, resp)
}

// GetByID - GET /api/author/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a.ToResponse())
}

// Create - POST /api/author
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "author payload must not be null or malformed")
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

	location := fmt.Sprintf("/api/author/%d", created.ID)
	response.Created(c, location, created.ToResponse())
}

// Update - PUT /api/author/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req author.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "author payload must not be null or malformed")
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

// Delete - DELETE /api/author/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
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

// parseID rejects non-numeric and non-positive identifiers before the
// service is ever invoked.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "author id must be a positive integer")
		return 0, false
	}
	return id, true
}

// writeError converts every error at the handler boundary into one of the
// API outcomes. Nothing propagates unconverted.
func (h *AuthorHandler) writeError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		response.ValidationError(c, fieldErrs)
		return
	}

	status := author.ToHTTPStatus(err)
	code := author.ToErrorCode(err)

	switch status {
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	case http.StatusBadRequest:
		// Business rule violations carry their rule key in the details
		// accumulator, matching field validation failures.
		response.ErrorWithDetails(c, status, code, err.Error(), gin.H{code: err.Error()})
	default:
		response.InternalServerError(c, err.Error())
	}
}
