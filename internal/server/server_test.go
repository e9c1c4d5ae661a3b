package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/fasahat78/startege/internal/catalog"
	"github.com/fasahat78/startege/internal/examgen"
	"github.com/fasahat78/startege/internal/exams"
	"github.com/fasahat78/startege/internal/llm"
	"github.com/fasahat78/startege/internal/store"
)

func newTestRouter(t *testing.T, responses ...llm.MockResponse) (*gin.Engine, *exams.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	cats := []catalog.Category{{ID: "cat-gdpr", Name: "Data Protection", Domain: "regulation"}}
	concepts := []store.SeedConcept{
		{Concept: catalog.Concept{ID: "c1", Name: "Lawful basis", CategoryID: "cat-gdpr"}, LevelNumber: 1, Position: 0},
		{Concept: catalog.Concept{ID: "c2", Name: "Data minimisation", CategoryID: "cat-gdpr"}, LevelNumber: 1, Position: 1},
	}
	if err := st.CatalogRepo().Seed(context.Background(), cats, concepts); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	mock := llm.NewMockProvider(responses...)
	cfg := examgen.DefaultConfig()
	pipeline := examgen.NewPipeline(examgen.NewLLMGenerator(mock, cfg), cfg)
	svc := exams.NewService(st, pipeline, exams.Metadata{Provider: "mock", Model: "mock-model"})

	return New(svc).Router([]string{"http://localhost:3000"}), svc
}

func levelOneSet() llm.MockResponse {
	q := func(num int, conceptID string) string {
		return fmt.Sprintf(`{
			"id": "q%d",
			"stem": "A controller relies on %s. What applies?",
			"options": [
				{"id": "A", "text": "Wrong one"},
				{"id": "B", "text": "Right answer"},
				{"id": "C", "text": "Wrong three"},
				{"id": "D", "text": "Wrong four"}
			],
			"correctOptionId": "B",
			"conceptIds": ["%s"],
			"categoryIds": ["cat-gdpr"],
			"difficultyTag": "apply",
			"rationale": {"correct": "This follows directly."}
		}`, num, conceptID, conceptID)
	}
	return llm.MockResponse{Content: json.RawMessage(`{"questions": [` + q(1, "c1") + `,` + q(2, "c2") + `]}`)}
}

func do(r *gin.Engine, method, path, user string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetExamRedactsAnswers(t *testing.T) {
	r, svc := newTestRouter(t, levelOneSet())
	ex, err := svc.GenerateLevelExam(context.Background(), 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	w := do(r, http.MethodGet, "/api/v1/exams/"+ex.ExamID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "Right answer") {
		t.Error("expected option text in response")
	}
	if strings.Contains(body, "correctOptionId") || strings.Contains(body, "rationale") {
		t.Errorf("answer key leaked into delivery payload: %s", body)
	}
	if !strings.Contains(body, `"timeLimitMinutes":20`) {
		t.Errorf("delivery payload missing the level time limit: %s", body)
	}
}

func TestGetExamNotFound(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodGet, "/api/v1/exams/nope", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestStartRequiresUser(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodPost, "/api/v1/exams/x/start", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestStartSubmitOverHTTP(t *testing.T) {
	r, svc := newTestRouter(t, levelOneSet())
	ex, err := svc.GenerateLevelExam(context.Background(), 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	w := do(r, http.MethodPost, "/api/v1/exams/"+ex.ExamID+"/start", "user-1", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("start status = %d, want 201: %s", w.Code, w.Body.String())
	}
	var started struct {
		Eligibility struct {
			Eligible bool `json:"eligible"`
		} `json:"eligibility"`
		Attempt struct {
			AttemptID     string `json:"attemptId"`
			AttemptNumber int    `json:"attemptNumber"`
		} `json:"attempt"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &started); err != nil {
		t.Fatalf("decode start response: %v", err)
	}
	if !started.Eligibility.Eligible || started.Attempt.AttemptNumber != 1 {
		t.Fatalf("unexpected start response: %s", w.Body.String())
	}

	answers := make([]map[string]string, 0, len(ex.Questions))
	for _, q := range ex.Questions {
		answers = append(answers, map[string]string{
			"questionId":       q.ID,
			"selectedOptionId": q.CorrectOptionID,
		})
	}
	payload := map[string]any{"answers": answers}

	w = do(r, http.MethodPost, "/api/v1/attempts/"+started.Attempt.AttemptID+"/submit", "user-1", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("submit status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var submitted struct {
		Result struct {
			Pass       bool    `json:"pass"`
			Percentage float64 `json:"percentage"`
		} `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &submitted); err != nil {
		t.Fatalf("decode submit response: %v", err)
	}
	if !submitted.Result.Pass || submitted.Result.Percentage != 100 {
		t.Fatalf("unexpected submit result: %s", w.Body.String())
	}

	// A second submission of the same attempt is a conflict.
	w = do(r, http.MethodPost, "/api/v1/attempts/"+started.Attempt.AttemptID+"/submit", "user-1", payload)
	if w.Code != http.StatusConflict {
		t.Fatalf("resubmit status = %d, want 409", w.Code)
	}
}

func TestEligibilityBadLevel(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodGet, "/api/v1/users/user-1/eligibility/abc", "user-1", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSubmitUnknownAttempt(t *testing.T) {
	r, _ := newTestRouter(t)
	payload := map[string]any{"answers": []map[string]string{{"questionId": "q1", "selectedOptionId": "A"}}}
	w := do(r, http.MethodPost, "/api/v1/attempts/nope/submit", "user-1", payload)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
