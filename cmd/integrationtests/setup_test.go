package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gig-hire/internal/auth"
	hiring "gig-hire/internal/hiringService"
	model "gig-hire/internal/models"
	"gig-hire/internal/repository"
	"gig-hire/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const testSecret = "integration-secret"

// TestEnv bundles a router with the store and token authority behind it
type TestEnv struct {
	Router    *gin.Engine
	Repo      *repository.MemoryRepo
	Authority *auth.JWTAuthority
}

// SetupTestRouter initializes the router with in-memory repository for integration testing.
func SetupTestRouter(notifier hiring.Notifier) *TestEnv {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	authority := auth.NewJWTAuthority(testSecret, "gighire", time.Hour)
	service := hiring.NewHiringService(repo, notifier)
	router := server.SetupRouter(server.Deps{
		Service:    service,
		Verifier:   authority,
		CookieName: "token",
	})
	return &TestEnv{Router: router, Repo: repo, Authority: authority}
}

// SeedGig stores an open gig directly in the repository
func (e *TestEnv) SeedGig(gigID, ownerID, title string) {
	e.Repo.AddGig(model.Gig{
		GigID:       gigID,
		OwnerID:     ownerID,
		Title:       title,
		Description: title + " description",
		Budget:      decimal.NewFromInt(500),
		Status:      model.GigOpen,
		CreatedAt:   time.Now().UTC(),
	})
}

// Token issues a session token for actorID
func (e *TestEnv) Token(t *testing.T, actorID string) string {
	t.Helper()
	token, err := e.Authority.Issue(actorID, actorID)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}

// ExecuteRequestAndParse executes an HTTP request on the given router as actorID
// (anonymous when empty) and parses the response envelope.
func (e *TestEnv) ExecuteRequestAndParse(t *testing.T, actorID, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if actorID != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: e.Token(t, actorID)})
	}
	e.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// Data returns the envelope's data object
func Data(resp map[string]any) map[string]any {
	data, _ := resp["data"].(map[string]any)
	return data
}
