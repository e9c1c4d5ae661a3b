// Package server exposes the exam lifecycle over HTTP. Handlers are
// thin: they bind requests, call the exams service, and translate
// domain outcomes into status codes. An ineligible start is a 200 with
// the gate's reasons, never an error status.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/fasahat78/startege/internal/exams"
)

// Server wires the exam service into a gin router.
type Server struct {
	svc *exams.Service
}

// New creates a Server over the given service.
func New(svc *exams.Service) *Server {
	return &Server{svc: svc}
}

// Router builds the HTTP routes. The caller owns listening and
// shutdown.
func (s *Server) Router(allowOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/exams/:examID", s.getExam)
		api.POST("/exams/:examID/start", s.startAttempt)
		api.POST("/attempts/:attemptID/submit", s.submitAttempt)
		api.GET("/users/:userID/eligibility/:level", s.eligibility)

		api.POST("/exams/level/:level", s.generateLevelExam)
		api.POST("/exams/category/:categoryID", s.generateCategoryExam)
	}

	return r
}
