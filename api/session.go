package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crm-assistant/service"
)

func HistoryHandler(chatSvc *service.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("session_id")

		sess, err := chatSvc.History(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if sess == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}

		c.JSON(http.StatusOK, sess)
	}
}

func ClearSessionHandler(chatSvc *service.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("session_id")

		if err := chatSvc.ClearSession(c.Request.Context(), sessionID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"cleared": true})
	}
}
