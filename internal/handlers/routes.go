// Package handlers wires the HTTP API: gin controllers over the service
// layer, one handler struct per resource.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/funfriday/backend/internal/auth"
	"github.com/funfriday/backend/internal/middleware"
	"github.com/funfriday/backend/internal/service"
)

// Services bundles everything the router needs.
type Services struct {
	Auth       *service.AuthService
	Cards      *service.CardService
	Catalog    *service.CatalogService
	Selections *service.SelectionService
	Summary    *service.SummaryService
	JWT        *auth.JWTManager
}

// RegisterRoutes attaches all endpoints to the engine.
func RegisterRoutes(r *gin.Engine, s Services) {
	authH := NewAuthHandler(s.Auth)
	cardH := NewCardHandler(s.Cards)
	catalogH := NewCatalogHandler(s.Catalog)
	selectionH := NewSelectionHandler(s.Selections)
	summaryH := NewSummaryHandler(s.Summary)

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authH.Register)
		a.POST("/login", authH.Login)
	}

	// Everything else requires a valid token
	authed := r.Group("/", middleware.RequireAuth(s.JWT))
	{
		authed.GET("/auth/me", authH.Me)

		authed.POST("/cards", cardH.Create)
		authed.GET("/cards", cardH.List)
		authed.GET("/cards/:id", cardH.Get)
		authed.DELETE("/cards/:id", cardH.Delete)

		authed.POST("/cards/:id/menu", catalogH.Add)
		authed.GET("/cards/:id/menu", catalogH.List)
		authed.POST("/cards/:id/menu/import", catalogH.Import)
		authed.DELETE("/cards/:id/menu/:itemId", catalogH.Delete)

		authed.PUT("/cards/:id/selections/:userId", selectionH.Upsert)
		authed.GET("/cards/:id/selections/me", selectionH.GetMine)

		authed.GET("/cards/:id/summary", summaryH.Get)
	}
}
