package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-catalog/internal/domains/book/model"
	"bookstore-catalog/internal/domains/book/service"
	"bookstore-catalog/internal/shared/apperror"
	"bookstore-catalog/internal/shared/response"
	"bookstore-catalog/internal/shared/utils"
)

type Handler struct {
	service service.ServiceInterface
}

func NewHandler(s service.ServiceInterface) *Handler {
	return &Handler{service: s}
}

// CreateBook - POST /livros/:id/livro, :id is the owning author
func (h *Handler) CreateBook(c *gin.Context) {
	authorID, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.FromError(c, model.ErrInvalidAuthorID)
		return
	}

	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.ErrInvalidJSON.Wrap(err))
		return
	}

	book, err := h.service.CreateBook(c.Request.Context(), authorID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, book)
}

// ListBooks - GET /livros
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, books)
}

// GetBookDetail - GET /livros/:id
func (h *Handler) GetBookDetail(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	detail, err := h.service.GetBookDetail(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// UpdateBook - PATCH /livros/:id
func (h *Handler) UpdateBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	var req model.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.ErrInvalidJSON.Wrap(err))
		return
	}

	book, err := h.service.UpdateBook(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book)
}

// DeleteBook - DELETE /livros/:id
func (h *Handler) DeleteBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteBook(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Book deleted successfully")
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	books := r.Group("/livros")
	{
		books.GET("", h.ListBooks)
		books.POST("/:id/livro", h.CreateBook)
		books.GET("/:id", h.GetBookDetail)
		books.PATCH("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
}

func parseBookID(c *gin.Context) (int64, bool) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.FromError(c, model.ErrInvalidBookID)
		return 0, false
	}
	return id, true
}
