package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"exam-service/internal/service"
)

type StatsHandler struct {
	Service *service.StatsService
}

func NewStatsHandler(s *service.StatsService) *StatsHandler {
	return &StatsHandler{Service: s}
}

func (h *StatsHandler) Current(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		badRequest(c, "user_id가 필요합니다")
		return
	}

	stats, err := h.Service.Current(c.Request.Context(), userID)
	if err != nil {
		fail(c, err, "사용자를 찾을 수 없습니다")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

func (h *StatsHandler) Detailed(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		badRequest(c, "user_id가 필요합니다")
		return
	}

	stats, err := h.Service.Detailed(c.Request.Context(), userID)
	if err != nil {
		fail(c, err, "사용자를 찾을 수 없습니다")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
