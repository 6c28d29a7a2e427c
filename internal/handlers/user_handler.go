package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"exam-service/internal/service"
)

type UserHandler struct {
	Service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{Service: s}
}

// Register creates a user, or returns the existing one for a known
// name.
func (h *UserHandler) Register(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "잘못된 요청 형식입니다")
		return
	}

	user, err := h.Service.Register(c.Request.Context(), req.Name)
	if err != nil {
		fail(c, err, "이름을 입력해주세요")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "user": user})
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "사용자를 찾을 수 없습니다")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
