package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anuntech/decision-backend/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memberStub struct {
	member *models.Member
	err    error
}

func (m memberStub) Find(_ primitive.ObjectID, _ primitive.ObjectID) (*models.Member, error) {
	return m.member, m.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func allowedRequest() *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/decision/x/validation", nil)
	req.Header.Set("workspaceId", primitive.NewObjectID().Hex())
	req.Header.Set("UserId", primitive.NewObjectID().Hex())
	return req
}

func TestIsAllowed(t *testing.T) {
	cases := []struct {
		name   string
		member memberStub
		want   int
	}{
		{"owner", memberStub{member: &models.Member{Role: models.MemberRoleOwner}}, http.StatusOK},
		{"admin", memberStub{member: &models.Member{Role: models.MemberRoleAdmin}}, http.StatusOK},
		{"plain member", memberStub{member: &models.Member{Role: "viewer"}}, http.StatusUnauthorized},
		{"not a member", memberStub{}, http.StatusUnauthorized},
		{"lookup failure", memberStub{err: errors.New("mongo down")}, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			IsAllowed(okHandler(), tc.member).ServeHTTP(rec, allowedRequest())
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestIsAllowed_InvalidWorkspace(t *testing.T) {
	req := allowedRequest()
	req.Header.Set("workspaceId", "nope")
	rec := httptest.NewRecorder()

	IsAllowed(okHandler(), memberStub{member: &models.Member{Role: models.MemberRoleOwner}}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyAccessToken_MissingToken(t *testing.T) {
	rec := httptest.NewRecorder()

	VerifyAccessToken(okHandler(), "secret").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyAccessToken_GarbageToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "next-auth.session-token", Value: "not.a.jwe"})
	rec := httptest.NewRecorder()

	VerifyAccessToken(okHandler(), "secret").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRecoveryMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	rec := httptest.NewRecorder()

	RecoveryMiddleware(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestCorsMiddleware(t *testing.T) {
	handler := CorsMiddleware(okHandler(), []string{"https://app.example"})

	preflight := httptest.NewRequest(http.MethodOptions, "/", nil)
	preflight.Header.Set("Origin", "https://app.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, preflight)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example", rec.Header().Get("Access-Control-Allow-Origin"))

	foreign := httptest.NewRequest(http.MethodGet, "/", nil)
	foreign.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, foreign)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
