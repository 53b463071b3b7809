package utils

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"finan/ms-pos-report/pkg/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReportDate(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "valid", value: "2023-05-01", want: time.Date(2023, 5, 1, 0, 0, 0, 0, loc)},
		{name: "surrounding spaces", value: " 2023-12-31 ", want: time.Date(2023, 12, 31, 0, 0, 0, 0, loc)},
		{name: "empty", value: "", wantErr: true},
		{name: "report format", value: "01/05/2023", wantErr: true},
		{name: "out of range", value: "2023-02-30", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReportDate(tt.value, loc)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, StatusCode(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), got)
		})
	}
}

func TestStoreReportNames(t *testing.T) {
	start := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "01/05/2023-01/05/2023", StoreReportRange(start))
	assert.Equal(t, "Report_Cửa hàng 1_01/05/2023-01/05/2023.xlsx", StoreReportFileName("Cửa hàng 1", start))
	assert.Equal(t, "01-05-2023-01-05-2023", StoreReportSheetName(start))
}

func TestTransformString(t *testing.T) {
	assert.Equal(t, "Don tai quan", TransformString("Đơn tại quán", false))
	assert.Equal(t, "doanh thu mang di", TransformString("Doanh thu mang đi", true))
	assert.Equal(t, "Report_Cua hang 1_01_05_2023-01_05_2023.xlsx",
		ASCIIFileName("Report_Cửa hàng 1_01/05/2023-01/05/2023.xlsx"))
}

func TestLoadLocation(t *testing.T) {
	assert.Equal(t, time.UTC, LoadLocation("Not/AZone"))
	assert.Equal(t, "UTC", LoadLocation("UTC").String())
}

func TestErrors(t *testing.T) {
	err := NewError(http.StatusNotFound, "")
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
	assert.Equal(t, MessageError()[http.StatusNotFound], err.Error())

	assert.Equal(t, http.StatusForbidden, StatusCode(NewError(http.StatusForbidden, MESS_STORE_REPORT_FORBIDDEN)))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
}

func TestCheckStoreScope(t *testing.T) {
	storeID := uuid.New()

	assert.NoError(t, CheckStoreScope(context.Background(), model.Identity{StoreID: storeID}, storeID))

	err := CheckStoreScope(context.Background(), model.Identity{StoreID: uuid.New()}, storeID)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, StatusCode(err))
}

func TestParseAccessToken(t *testing.T) {
	identity := model.Identity{
		UserID:  uuid.New(),
		StoreID: uuid.New(),
		BrandID: uuid.New(),
		Role:    model.RoleStoreManager,
	}
	registered := jwt.RegisteredClaims{
		Issuer:    "pos-system",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}

	token, err := CreateAccessToken("secret", identity, registered)
	require.NoError(t, err)

	got, err := ParseAccessToken("secret", "pos-system", token)
	require.NoError(t, err)
	assert.Equal(t, identity, got)

	_, err = ParseAccessToken("secret", "another-issuer", token)
	assert.Error(t, err)

	_, err = ParseAccessToken("", "pos-system", token)
	assert.Error(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, model.AccessTokenClaims{
		UserID:           identity.UserID.String(),
		Role:             identity.Role,
		RegisteredClaims: registered,
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = ParseAccessToken("secret", "pos-system", hs512)
	assert.Error(t, err)

	badUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, model.AccessTokenClaims{
		UserID:           "not-a-uuid",
		Role:             identity.Role,
		RegisteredClaims: registered,
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = ParseAccessToken("secret", "pos-system", badUser)
	assert.Error(t, err)
}

func TestParseAccessToken_BrandAdminWithoutStore(t *testing.T) {
	identity := model.Identity{UserID: uuid.New(), BrandID: uuid.New(), Role: model.RoleBrandAdmin}

	token, err := CreateAccessToken("secret", identity, jwt.RegisteredClaims{})
	require.NoError(t, err)

	got, err := ParseAccessToken("secret", "", token)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, got.StoreID)
	assert.Equal(t, identity.BrandID, got.BrandID)
}
