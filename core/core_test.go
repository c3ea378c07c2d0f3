package core_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillpoint/posaccess/core"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) core.JSONResponse {
	t.Helper()
	var body core.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestJSON(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	core.JSON(rec, http.StatusCreated, map[string]string{"id": "r-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"id":"r-1"}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	core.JSONList(rec, []int{1, 2}, map[string]any{"total": 2})
	assert.JSONEq(t, `{"data":[1,2],"meta":{"total":2}}`, rec.Body.String())
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	type input struct {
		Name string `validate:"required"`
		Age  int    `validate:"min=18"`
	}
	valErr := validator.New().Struct(input{Age: 3})
	require.Error(t, valErr)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "http error", err: core.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: "forbidden"},
		{name: "wrapped http error", err: fmt.Errorf("lookup: %w", core.ErrNotFound), wantStatus: http.StatusNotFound, wantCode: "not_found"},
		{name: "custom http error", err: core.NewHTTPError(http.StatusConflict, "duplicate_role"), wantStatus: http.StatusConflict, wantCode: "duplicate_role"},
		{name: "joined validation error", err: errors.Join(errors.New("invalid input"), valErr), wantStatus: http.StatusUnprocessableEntity, wantCode: "validation_error"},
		{name: "unknown error", err: errors.New("db exploded"), wantStatus: http.StatusInternalServerError, wantCode: "internal_server_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			status := core.JSONError(rec, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantStatus, rec.Code)

			body := decodeBody(t, rec)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotContains(t, rec.Body.String(), "db exploded")
		})
	}

	t.Run("validation details", func(t *testing.T) {
		rec := httptest.NewRecorder()
		core.JSONError(rec, valErr)
		body := decodeBody(t, rec)
		assert.Equal(t, []string{"is required"}, body.Error.Details["Name"])
		assert.Equal(t, []string{"must be at least 18"}, body.Error.Details["Age"])
	})
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	e := make(core.ValidationError)
	assert.Equal(t, "validation failed", e.Error())

	e.Add("name", "is required")
	e.Add("hierarchy", "must be at most 1000")
	assert.True(t, e.Has("name"))
	assert.False(t, e.Has("permissions"))
	assert.Equal(t, "validation error: hierarchy: must be at most 1000, name: is required", e.Error())

	_, ok := core.ValidationErrorFrom(errors.New("plain"))
	assert.False(t, ok)
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Mode string `json:"mode"`
	}

	tests := []struct {
		name        string
		contentType string
		body        string
		wantErr     error
		wantMode    string
	}{
		{name: "valid", contentType: "application/json", body: `{"mode":"any"}`, wantMode: "any"},
		{name: "charset parameter", contentType: "application/json; charset=utf-8", body: `{"mode":"all"}`, wantMode: "all"},
		{name: "no content type", body: `{"mode":"any"}`, wantMode: "any"},
		{name: "wrong media type", contentType: "text/plain", body: `{}`, wantErr: core.ErrUnsupportedMediaType},
		{name: "unknown field", contentType: "application/json", body: `{"mood":"any"}`, wantErr: core.ErrBadRequest},
		{name: "empty body", contentType: "application/json", body: ``, wantErr: core.ErrBadRequest},
		{name: "trailing data", contentType: "application/json", body: `{"mode":"any"} {}`, wantErr: core.ErrBadRequest},
		{name: "too large", contentType: "application/json", body: `{"mode":"` + strings.Repeat("x", core.MaxBodySize) + `"}`, wantErr: core.ErrRequestTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/check", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			var got payload
			err := core.DecodeJSON(httptest.NewRecorder(), req, &got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, got.Mode)
		})
	}
}
