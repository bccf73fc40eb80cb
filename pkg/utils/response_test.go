package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "equipment-system/pkg/errors"
)

func TestStatusForError(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusForError(apperrors.ErrNotFound))
	assert.Equal(t, http.StatusNotFound, statusForError(fmt.Errorf("обёртка: %w", apperrors.ErrNotFound)))
	assert.Equal(t, http.StatusConflict, statusForError(apperrors.ErrUpdateFailed))
	assert.Equal(t, http.StatusBadRequest, statusForError(apperrors.NewInvalidEnumError("location", "Basement")))
	assert.Equal(t, http.StatusBadRequest, statusForError(apperrors.ErrBadRequest))
	assert.Equal(t, http.StatusUnauthorized, statusForError(apperrors.ErrInvalidCredentials))
	assert.Equal(t, http.StatusUnauthorized, statusForError(apperrors.ErrTokenExpired))
	assert.Equal(t, http.StatusInternalServerError, statusForError(fmt.Errorf("что-то пошло не так")))
}

func TestErrorResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/equipment/999", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	err := ErrorResponse(ctx, apperrors.ErrNotFound, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body HttpResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Status)
	assert.NotEmpty(t, body.Message)
}

func TestSuccessResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/equipment", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	err := SuccessResponse(ctx, map[string]uint64{"id": 7}, "Оборудование найдено", http.StatusOK)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body HttpResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Status)
	assert.Equal(t, "Оборудование найдено", body.Message)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
