package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finan/ms-pos-report/pkg/model"
	"finan/ms-pos-report/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testIssuer = "pos-system"
)

func setupRouter(roles ...model.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Authenticate(testSecret, testIssuer), RequireRoles(roles...), func(c *gin.Context) {
		identity, err := utils.CurrentIdentity(c)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"store_id": identity.StoreID.String(), "role": identity.Role})
	})
	return r
}

func signToken(t *testing.T, secret string, identity model.Identity, expiresAt time.Time) string {
	t.Helper()
	token, err := utils.CreateAccessToken(secret, identity, jwt.RegisteredClaims{
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	staff := model.Identity{
		UserID:  uuid.New(),
		StoreID: uuid.New(),
		BrandID: uuid.New(),
		Role:    model.RoleStaff,
	}
	admin := model.Identity{UserID: uuid.New(), BrandID: uuid.New(), Role: model.RoleBrandAdmin}

	tests := []struct {
		name     string
		header   func(t *testing.T) string
		wantCode int
	}{
		{
			name:     "missing header",
			header:   func(t *testing.T) string { return "" },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "not a bearer token",
			header:   func(t *testing.T) string { return "Basic dXNlcjpwYXNz" },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "garbage token",
			header:   func(t *testing.T) string { return "Bearer not.a.jwt" },
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "signed with another secret",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, "other-secret", staff, time.Now().Add(time.Hour))
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, testSecret, staff, time.Now().Add(-time.Hour))
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "role not allowed",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, testSecret, admin, time.Now().Add(time.Hour))
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "valid staff token",
			header: func(t *testing.T) string {
				return "Bearer " + signToken(t, testSecret, staff, time.Now().Add(time.Hour))
			},
			wantCode: http.StatusOK,
		},
		{
			name: "scheme is case insensitive",
			header: func(t *testing.T) string {
				return "bearer " + signToken(t, testSecret, staff, time.Now().Add(time.Hour))
			},
			wantCode: http.StatusOK,
		},
	}
	router := setupRouter(model.RoleStoreManager, model.RoleStaff)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if h := tt.header(t); h != "" {
				req.Header.Set("Authorization", h)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), staff.StoreID.String())
			}
		})
	}
}

func TestRequireRoles_WithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/open", RequireRoles(model.RoleStaff), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
