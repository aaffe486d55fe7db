package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/funfriday/backend/internal/middleware"
	"github.com/funfriday/backend/internal/service"
	"github.com/funfriday/backend/pkg/resp"
)

// CardHandler exposes the card lifecycle endpoints.
type CardHandler struct {
	svc *service.CardService
}

func NewCardHandler(svc *service.CardService) *CardHandler {
	return &CardHandler{svc: svc}
}

// POST /cards
func (h *CardHandler) Create(c *gin.Context) {
	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	card, err := h.svc.Create(c.Request.Context(), req.Title, middleware.UserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, card)
}

// GET /cards
func (h *CardHandler) List(c *gin.Context) {
	cards, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, cards)
}

// GET /cards/:id
func (h *CardHandler) Get(c *gin.Context) {
	card, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, card)
}

// DELETE /cards/:id
func (h *CardHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
