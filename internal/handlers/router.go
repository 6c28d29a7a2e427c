package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"exam-service/internal/event"
)

// Register mounts the HTTP surface on an engine whose middleware is
// already in place. The publisher may be nil; study events are then
// silently skipped.
func Register(r *gin.Engine, users *UserHandler, quiz *QuizHandler, stats *StatsHandler, publisher *event.EventPublisher) {
	user := r.Group("/user")
	{
		user.POST("/register", users.Register)
		user.GET("/:id", users.Get)
	}

	q := r.Group("/quiz")
	{
		q.POST("/start", func(c *gin.Context) {
			quiz.Start(c)
			if publisher != nil {
				publisher.Publish("exam.session.started", gin.H{"timestamp": time.Now()})
			}
		})
		q.GET("/question/:session_id/:index", quiz.GetQuestion)
		q.POST("/submit", func(c *gin.Context) {
			quiz.Submit(c)
			if publisher != nil {
				publisher.Publish("exam.answer.submitted", gin.H{"timestamp": time.Now()})
			}
		})
		q.POST("/end", func(c *gin.Context) {
			quiz.End(c)
			if publisher != nil {
				publisher.Publish("exam.session.ended", gin.H{"timestamp": time.Now()})
			}
		})
	}

	s := r.Group("/stats")
	{
		s.GET("/current", stats.Current)
		s.GET("/detailed", stats.Detailed)
	}
}
