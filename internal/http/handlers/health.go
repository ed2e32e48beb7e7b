package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/assemblee-ouverte/assemblee-backend/internal/http/response"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Healthcheck(c *gin.Context) {
	response.RespondOK(c, gin.H{"status": "ok"})
}
