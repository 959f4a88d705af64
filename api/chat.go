package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crm-assistant/model"
	"crm-assistant/service"
)

func ChatHandler(chatSvc *service.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
		if req.Message == "" && req.Action == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message or action is required"})
			return
		}

		resp, err := chatSvc.HandleMessage(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// ClassifyHandler exposes the classifier on its own, mainly for the
// widget's debug panel.
func ClassifyHandler(classifier *service.Classifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Message string `json:"message"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}

		c.JSON(http.StatusOK, classifier.Classify(req.Message))
	}
}
