package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventapi/internal/domain"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query string
		want  domain.PaginationParams
	}{
		{"", domain.PaginationParams{Page: 1, PageSize: 10}},
		{"page=3&page_size=25", domain.PaginationParams{Page: 3, PageSize: 25}},
		{"page=0&page_size=-5", domain.PaginationParams{Page: 1, PageSize: 10}},
		{"page=abc&page_size=xyz", domain.PaginationParams{Page: 1, PageSize: 10}},
		{"page_size=1000", domain.PaginationParams{Page: 1, PageSize: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/events/?"+tt.query, nil)
			assert.Equal(t, tt.want, ParsePagination(r))
		})
	}
}

func TestNewPage(t *testing.T) {
	p := NewPage([]string{"a", "b"}, domain.PaginationParams{Page: 2, PageSize: 2}, 5)
	assert.Equal(t, 5, p.Count)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 2, p.Page)

	empty := NewPage[string](nil, domain.PaginationParams{Page: 1, PageSize: 10}, 0)
	body, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":0,"page":1,"page_size":10,"total_pages":0,"results":[]}`, string(body))
}

func TestWriteJSONError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSONError(rec, http.StatusNotFound, ErrCodeNotFound, "Not found.")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"detail":"Not found.","code":"not_found"}`, rec.Body.String())
}

type sampleRequest struct {
	Title  *string `json:"title" validate:"required,max=5"`
	Email  string  `json:"email" validate:"omitempty,email"`
	Status string  `json:"status" validate:"omitempty,oneof=Going Maybe"`
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantOK   bool
		wantCode string
		contains string
	}{
		{"valid, unknown fields ignored", `{"title":"Party","organizer":"someone"}`, true, "", ""},
		{"missing required", `{}`, false, ErrCodeInvalid, "title: This field is required."},
		{"empty body", ``, false, ErrCodeInvalid, "title: This field is required."},
		{"too long", `{"title":"Birthday"}`, false, ErrCodeInvalid, "title: Ensure this field has no more than 5 characters."},
		{"bad email", `{"title":"x","email":"nope"}`, false, ErrCodeInvalid, "email: Enter a valid email address."},
		{"bad choice", `{"title":"x","status":"Yes"}`, false, ErrCodeInvalid, `status: "Yes" is not a valid choice.`},
		{"wrong type", `{"title":5}`, false, ErrCodeBadRequest, "title"},
		{"malformed", `{"title":`, false, ErrCodeBadRequest, "JSON parse error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var req sampleRequest
			ok := DecodeAndValidate(rec, r, &req)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				return
			}
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var apiErr APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Contains(t, apiErr.Detail, tt.contains)
		})
	}
}

func TestIntField(t *testing.T) {
	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{`4`, 4, true},
		{`4.0`, 4, true},
		{`"4"`, 4, true},
		{`" 3 "`, 3, true},
		{`"5.0"`, 5, true},
		{`-2`, -2, true},
		{`4.5`, 0, false},
		{`"4.5"`, 0, false},
		{`"abc"`, 0, false},
		{`""`, 0, false},
		{`true`, 0, false},
		{`[4]`, 0, false},
		{`{"value":4}`, 0, false},
		{`null`, 0, false},
		{`1e20`, 0, false},
		{``, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := IntField(json.RawMessage(tt.raw))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringField(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{`"great"`, "great", true},
		{`7`, "7", true},
		{`4.50`, "4.50", true},
		{`null`, "", true},
		{``, "", true},
		{`false`, "", false},
		{`["a"]`, "", false},
		{`{}`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := StringField(json.RawMessage(tt.raw))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
