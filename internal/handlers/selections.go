package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/funfriday/backend/internal/middleware"
	"github.com/funfriday/backend/internal/service"
	"github.com/funfriday/backend/pkg/resp"
)

// SelectionHandler exposes the per-user cart endpoints of a card.
type SelectionHandler struct {
	svc *service.SelectionService
}

func NewSelectionHandler(svc *service.SelectionService) *SelectionHandler {
	return &SelectionHandler{svc: svc}
}

// PUT /cards/:id/selections/:userId
//
// The target user ID is explicit in the path so the cross-user write rule is
// enforced in one place; the service denies any target other than the
// authenticated actor.
func (h *SelectionHandler) Upsert(c *gin.Context) {
	var req struct {
		Items map[string]int `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := h.svc.Upsert(c.Request.Context(),
		c.Param("id"), middleware.UserID(c), c.Param("userId"), req.Items)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"saved": true})
}

// GET /cards/:id/selections/me
func (h *SelectionHandler) GetMine(c *gin.Context) {
	sel, err := h.svc.Get(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, sel)
}
