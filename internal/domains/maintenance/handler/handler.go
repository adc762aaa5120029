package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-catalog/internal/domains/maintenance/service"
	"bookstore-catalog/internal/shared/response"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(s service.ServiceInterface) *Handler {
	return &Handler{service: s}
}

// Reset - POST /reset
func (h *Handler) Reset(c *gin.Context) {
	if err := h.service.Reset(c.Request.Context()); err != nil {
		response.FromError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Catalog reset successfully")
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/reset", h.Reset)
}
