package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fasahat78/startege/internal/exam"
	"github.com/fasahat78/startege/internal/examgen"
	"github.com/fasahat78/startege/internal/store"
)

// userID reads the caller identity set by the auth layer upstream.
func userID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-User-ID")
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header is required"})
		return "", false
	}
	return id, true
}

// getExam returns one exam version with answers and rationales
// redacted. The full record never leaves the server before submission.
func (s *Server) getExam(c *gin.Context) {
	ex, err := s.svc.Exam(c.Request.Context(), c.Param("examID"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "exam not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, examView(ex))
}

// startAttempt opens a numbered attempt when the gate allows it. An
// ineligible user gets a 200 whose eligibility block explains why.
func (s *Server) startAttempt(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	out, err := s.svc.StartAttempt(c.Request.Context(), uid, c.Param("examID"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "exam not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"eligibility": out.Eligibility}
	if out.Attempt != nil {
		resp["attempt"] = attemptView(out.Attempt)
		resp["exam"] = examView(out.Exam)
		c.JSON(http.StatusCreated, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// submitAttempt scores and freezes an open attempt.
func (s *Server) submitAttempt(c *gin.Context) {
	var req struct {
		Answers []exam.Answer `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format", "details": err.Error()})
		return
	}

	out, err := s.svc.SubmitAttempt(c.Request.Context(), c.Param("attemptID"), req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "attempt not found"})
		case errors.Is(err, store.ErrAlreadySubmitted):
			c.JSON(http.StatusConflict, gin.H{"error": "attempt already submitted"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attempt":      attemptView(out.Attempt),
		"result":       out.Result,
		"weakConcepts": weakConceptViews(out.WeakConcepts),
	})
}

// eligibility reports a user's standing toward one boss exam.
func (s *Server) eligibility(c *gin.Context) {
	uid := c.Param("userID")
	level, err := strconv.Atoi(c.Param("level"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "level must be an integer"})
		return
	}

	elig, err := s.svc.Eligibility(c.Request.Context(), uid, level)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, elig)
}

// generateLevelExam produces and persists a new version of a level
// exam. Intended for authoring and operations, not test takers.
func (s *Server) generateLevelExam(c *gin.Context) {
	level, err := strconv.Atoi(c.Param("level"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "level must be an integer"})
		return
	}

	ex, err := s.svc.GenerateLevelExam(c.Request.Context(), level)
	if err != nil {
		s.generationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, generatedView(ex))
}

// generateCategoryExam produces and persists a new version of a
// category exam.
func (s *Server) generateCategoryExam(c *gin.Context) {
	ex, err := s.svc.GenerateCategoryExam(c.Request.Context(), c.Param("categoryID"))
	if err != nil {
		s.generationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, generatedView(ex))
}

// generationError distinguishes an exhausted retry budget from
// infrastructure failure. The composition errors are surfaced so an
// author can adjust the scope or plan.
func (s *Server) generationError(c *gin.Context, err error) {
	var comp *examgen.CompositionError
	if errors.As(err, &comp) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    "generated set failed composition validation",
			"attempts": comp.Attempts,
			"details":  comp.Errors,
		})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
