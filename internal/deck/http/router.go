package http

import "github.com/gin-gonic/gin"

// Register attaches deck routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.POST("/resolve", h.resolve)
	rg.GET("/:id", h.get)
	rg.GET("/:id/export", h.exportDeck)
	rg.POST("/:id/export/upload", h.uploadExport)
}
