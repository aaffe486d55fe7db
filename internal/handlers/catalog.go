package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/funfriday/backend/internal/middleware"
	"github.com/funfriday/backend/internal/models"
	"github.com/funfriday/backend/internal/service"
	"github.com/funfriday/backend/pkg/resp"
)

// CatalogHandler exposes the menu endpoints of a card.
type CatalogHandler struct {
	svc *service.CatalogService
}

func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// POST /cards/:id/menu
func (h *CatalogHandler) Add(c *gin.Context) {
	var draft models.MenuItemDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.svc.AddItem(c.Request.Context(), c.Param("id"), middleware.UserID(c), draft)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, item)
}

// POST /cards/:id/menu/import
//
// The body is the raw bulk-import payload: a JSON array of menu item objects.
// It is passed through verbatim so the service can apply its lenient
// per-element decoding.
func (h *CatalogHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		resp.BadRequest(c, "failed to read request body")
		return
	}

	result, err := h.svc.BulkImport(c.Request.Context(), c.Param("id"), middleware.UserID(c), raw)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, result)
}

// GET /cards/:id/menu
func (h *CatalogHandler) List(c *gin.Context) {
	items, err := h.svc.ListItems(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, items)
}

// DELETE /cards/:id/menu/:itemId
func (h *CatalogHandler) Delete(c *gin.Context) {
	err := h.svc.DeleteItem(c.Request.Context(), c.Param("id"), middleware.UserID(c), c.Param("itemId"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
