package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"utme_prep_backend/internal/config"
	"utme_prep_backend/internal/service"
	"utme_prep_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		Archive: config.ArchiveConfig{
			Backend:      "local",
			LocalPath:    os.TempDir(),
			FetchTimeout: time.Second,
			Concurrency:  2,
			SubjectFiles: map[string]string{"physics": "JAMB_Physics_Q1-35.txt"},
		},
		Quiz: config.QuizConfig{
			Period:              3,
			GeneratedDate:       "2026-08-24",
			ValidationStatus:    "PASSED",
			ExpectedPerSubject:  35,
			SingleTimerMinutes:  15,
			ClusterTimerMinutes: 60,
		},
	}
}

func testRouter(cfg *config.Config) *gin.Engine {
	fetcher := service.NewFetcherService(cfg)
	validator := service.NewValidatorService(cfg)
	cache := service.NewSubjectCache()
	resolver := service.NewResolverService(cfg, fetcher, service.NewNormalizerService(), validator, cache)

	quiz := NewQuizController(resolver, cfg)
	validation := NewValidationController(validator)
	health := NewHealthController(cache)

	router := gin.New()
	router.GET("/api/quiz/:page", quiz.GetQuiz)
	router.GET("/api/period", quiz.GetPeriod)
	router.POST("/api/questions/validate", validation.ValidateDocument)
	router.GET("/api/health", health.HealthCheck)
	return router
}

func TestGetQuizFallsBackToBuiltin(t *testing.T) {
	router := testRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quiz/quiz-unknown-page", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Questions []json.RawMessage `json:"questions"`
			Metadata  struct {
				Tier              string `json:"tier"`
				UsingFallbackData bool   `json:"usingFallbackData"`
				TotalQuestions    int    `json:"totalQuestions"`
			} `json:"metadata"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "builtin-sample", body.Data.Metadata.Tier)
	assert.False(t, body.Data.Metadata.UsingFallbackData)
	assert.NotEmpty(t, body.Data.Questions)
	assert.Equal(t, len(body.Data.Questions), body.Data.Metadata.TotalQuestions)
}

func TestGetPeriod(t *testing.T) {
	router := testRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/period", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"dayRange":"05-06"`)
	assert.Contains(t, w.Body.String(), `"period":3`)
}

func TestValidateDocumentEndpoint(t *testing.T) {
	router := testRouter(testConfig())

	payload := `{"filename":"JAMB_Physics_Q1-35.txt","content":"1. Q?\nA. a\nB. b\nC. c\nD. d\nAnswer: A\n"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/questions/validate", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subject":"Physics"`)
	assert.Contains(t, w.Body.String(), `"questionCount":1`)

	// 缺字段直接 400
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/questions/validate", strings.NewReader(`{"filename":"x.txt"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck(t *testing.T) {
	router := testRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
