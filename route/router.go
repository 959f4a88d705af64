package route

import (
	"github.com/gin-gonic/gin"

	"crm-assistant/api"
	"crm-assistant/service"
)

func Register(r *gin.Engine, chatSvc *service.ChatService, classifier *service.Classifier) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	chatGroup := r.Group("/chat")
	{
		chatGroup.POST("", api.ChatHandler(chatSvc))
		chatGroup.POST("/classify", api.ClassifyHandler(classifier))
		chatGroup.GET("/:session_id/history", api.HistoryHandler(chatSvc))
		chatGroup.DELETE("/:session_id", api.ClearSessionHandler(chatSvc))
	}
}
