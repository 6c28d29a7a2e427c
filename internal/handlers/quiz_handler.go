package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"exam-service/internal/service"
)

type QuizHandler struct {
	Sessions *service.SessionService
	Users    *service.UserService
}

func NewQuizHandler(sessions *service.SessionService, users *service.UserService) *QuizHandler {
	return &QuizHandler{Sessions: sessions, Users: users}
}

// Start opens a study session. When neither user_id nor user_name
// resolves to a known user a guest is auto-created.
func (h *QuizHandler) Start(c *gin.Context) {
	var req struct {
		UserID   string `json:"user_id"`
		UserName string `json:"user_name"`
		Mode     string `json:"mode" binding:"required"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "잘못된 요청 형식입니다")
		return
	}

	user, err := h.Users.Resolve(c.Request.Context(), req.UserID, req.UserName)
	if err != nil {
		fail(c, err, "사용자 확인에 실패했습니다")
		return
	}

	session, question, err := h.Sessions.StartSession(user.UserID, req.Mode, req.Category)
	if err != nil {
		fail(c, err, "학습을 시작할 수 없습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"session_id":      session.ID,
		"user_id":         user.UserID,
		"question_data":   question,
		"question_index":  session.CurrentIndex,
		"total_questions": session.TotalQuestions,
	})
}

// GetQuestion serves the question at a session-local index.
func (h *QuizHandler) GetQuestion(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		badRequest(c, "문제 번호가 올바르지 않습니다")
		return
	}

	question, session, err := h.Sessions.GetQuestion(c.Param("session_id"), index)
	if err != nil {
		fail(c, err, "문제를 찾을 수 없습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"question":        question,
		"question_index":  index,
		"total_questions": session.TotalQuestions,
	})
}

// Submit grades an answer against the session's current question.
func (h *QuizHandler) Submit(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id" binding:"required"`
		Answer    string `json:"answer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "잘못된 요청 형식입니다")
		return
	}

	result, err := h.Sessions.SubmitAnswer(c.Request.Context(), req.SessionID, req.Answer)
	if err != nil {
		fail(c, err, "답안을 처리할 수 없습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"is_correct":     result.IsCorrect,
		"correct_answer": result.CorrectAnswer,
		"explain":        result.Explain,
		"session_info": gin.H{
			"correct_count": result.CorrectCount,
			"wrong_count":   result.WrongCount,
		},
		"next_question":  result.NextQuestion,
		"question_index": result.NextIndex,
	})
}

// End closes a session and returns its summary.
func (h *QuizHandler) End(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "잘못된 요청 형식입니다")
		return
	}

	summary, err := h.Sessions.EndSession(c.Request.Context(), req.SessionID)
	if err != nil {
		fail(c, err, "세션을 종료할 수 없습니다")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "summary": summary})
}
