package postings

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jobpost-backend/internal/extraction"
	"jobpost-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches posting routes to the router group. The submit
// route additionally runs the given middleware (rate limiting).
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, submitMiddleware ...gin.HandlerFunc) {
	create := append(append([]gin.HandlerFunc{}, submitMiddleware...), h.create)
	rg.POST("/postings", create...)
	rg.GET("/postings", h.list)
	rg.GET("/postings/:id", h.get)
	rg.DELETE("/postings/:id", h.remove)
}

type createRequest struct {
	Text string `json:"text"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
		return
	}

	posting, err := h.Svc.Create(c.Request.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, extraction.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze posting", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(posting))
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	items, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list postings", nil)
		return
	}
	respond.OK(c, gin.H{"postings": toResponseList(items)})
}

func (h *Handler) get(c *gin.Context) {
	posting, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "posting not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch posting", nil)
		}
		return
	}
	respond.OK(c, toResponse(posting))
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "posting not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete posting", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
