package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"docpoint-service/internal/app/config"
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return &Middlewares{
		Log: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			JWT: config.AppJWT{Secret: "test-secret"},
			Admin: config.AppAdmin{
				Email:    "admin@example.com",
				Password: "admin-password",
			},
		},
	}
}

func TestAuthenticateAdmin(t *testing.T) {
	m := newTestMiddlewares()

	var gotRole interface{}
	handler := m.AuthenticateAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRole = r.Context().Value(constvars.CONTEXT_ROLE_KEY)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Missing Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/dashboard", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Valid Token", func(t *testing.T) {
		token, err := utils.GenerateCredentialToken("admin@example.comadmin-password", "test-secret")
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/dashboard", nil)
		req.Header.Set(constvars.HeaderAdminToken, token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constvars.RoleAdmin, gotRole)
	})

	t.Run("Credential For Different Admin", func(t *testing.T) {
		token, err := utils.GenerateCredentialToken("someone@example.comother-password", "test-secret")
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/dashboard", nil)
		req.Header.Set(constvars.HeaderAdminToken, token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Token Signed With Wrong Secret", func(t *testing.T) {
		token, err := utils.GenerateCredentialToken("admin@example.comadmin-password", "other-secret")
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/dashboard", nil)
		req.Header.Set(constvars.HeaderAdminToken, token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthenticateDoctor(t *testing.T) {
	m := newTestMiddlewares()

	var gotDoctorID interface{}
	handler := m.AuthenticateDoctor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDoctorID = r.Context().Value(constvars.CONTEXT_DOCTOR_ID_KEY)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Missing Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/appointments", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Valid Token Carries Doctor ID", func(t *testing.T) {
		token, err := utils.GenerateIDToken("64b7f3a2c9e77a0012345678", "test-secret")
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/appointments", nil)
		req.Header.Set(constvars.HeaderDoctorToken, token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "64b7f3a2c9e77a0012345678", gotDoctorID)
	})
}

func TestAuthenticateStaff(t *testing.T) {
	m := newTestMiddlewares()

	var gotRole, gotDoctorID interface{}
	handler := m.AuthenticateStaff(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRole = r.Context().Value(constvars.CONTEXT_ROLE_KEY)
		gotDoctorID = r.Context().Value(constvars.CONTEXT_DOCTOR_ID_KEY)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("No Token At All", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/appointments", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Admin Token Admits As Admin", func(t *testing.T) {
		gotRole, gotDoctorID = nil, nil
		token, err := utils.GenerateCredentialToken("admin@example.comadmin-password", "test-secret")
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/appointments", nil)
		req.Header.Set(constvars.HeaderAdminToken, token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constvars.RoleAdmin, gotRole)
		assert.Nil(t, gotDoctorID)
	})

	t.Run("Doctor Token Admits With Doctor ID", func(t *testing.T) {
		gotRole, gotDoctorID = nil, nil
		token, err := utils.GenerateIDToken("doc1", "test-secret")
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/appointments", nil)
		req.Header.Set(constvars.HeaderDoctorToken, token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "doc1", gotDoctorID)
	})
}

func TestAuthenticatePatient(t *testing.T) {
	m := newTestMiddlewares()

	var gotUserID interface{}
	handler := m.AuthenticatePatient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.Context().Value(constvars.CONTEXT_USER_ID_KEY)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Missing Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/profile", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/profile", nil)
		req.Header.Set(constvars.HeaderPatientToken, "not.a.token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Valid Token Carries User ID", func(t *testing.T) {
		token, err := utils.GenerateIDToken("64b7f3a2c9e77a0087654321", "test-secret")
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/profile", nil)
		req.Header.Set(constvars.HeaderPatientToken, token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "64b7f3a2c9e77a0087654321", gotUserID)
	})
}
