package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return NewAuthService("test-secret", "teacher", string(hash))
}

func TestIssueAndParse(t *testing.T) {
	svc := newTestService(t)
	tok, err := svc.IssueJWT("teacher", "instructor")
	if err != nil {
		t.Fatalf("IssueJWT: %v", err)
	}
	claims, err := svc.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.Sub != "teacher" || claims.Role != "instructor" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseRejectsForeignSignature(t *testing.T) {
	svc := newTestService(t)
	other := NewAuthService("other-secret", "teacher", "")
	tok, err := other.IssueJWT("teacher", "instructor")
	if err != nil {
		t.Fatalf("IssueJWT: %v", err)
	}
	if _, err := svc.Parse(tok); err == nil {
		t.Fatalf("token signed with a different secret was accepted")
	}
}

func TestLoginHandler(t *testing.T) {
	svc := newTestService(t)
	handler := LoginHandler(svc)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"valid", `{"username":"teacher","password":"letmein"}`, http.StatusOK},
		{"wrong password", `{"username":"teacher","password":"nope"}`, http.StatusUnauthorized},
		{"wrong user", `{"username":"admin","password":"letmein"}`, http.StatusUnauthorized},
		{"garbage", `{"username":`, http.StatusBadRequest},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tc.body))
		rec := httptest.NewRecorder()
		handler(rec, req)
		if rec.Code != tc.want {
			t.Fatalf("%s: status = %d, want %d", tc.name, rec.Code, tc.want)
		}
		if tc.want == http.StatusOK && !strings.Contains(rec.Body.String(), "access_token") {
			t.Fatalf("%s: no access_token in response", tc.name)
		}
	}
}

func TestJWTMiddleware(t *testing.T) {
	svc := newTestService(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	guarded := JWTMiddleware(svc)(next)

	req := httptest.NewRequest(http.MethodGet, "/api/quizzes", nil)
	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing header: status = %d", rec.Code)
	}

	tok, err := svc.IssueJWT("teacher", "instructor")
	if err != nil {
		t.Fatalf("IssueJWT: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/api/quizzes", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("valid token: status = %d", rec.Code)
	}
}
