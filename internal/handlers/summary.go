package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/funfriday/backend/internal/middleware"
	"github.com/funfriday/backend/internal/service"
	"github.com/funfriday/backend/pkg/resp"
)

// SummaryHandler exposes the organizer's aggregated view of a card.
type SummaryHandler struct {
	svc *service.SummaryService
}

func NewSummaryHandler(svc *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

// GET /cards/:id/summary
func (h *SummaryHandler) Get(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, summary)
}
