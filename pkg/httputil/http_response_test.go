package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/limbo/dailypulse/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Name string `json:"name"`
	}
	tests := []struct {
		Desc    string
		Body    string
		Want    string
		WantErr error
		Broken  bool
	}{
		{Desc: "valid", Body: `{"name":"water"}`, Want: "water"},
		{Desc: "empty", Body: "", WantErr: httputil.ErrEmptyBody},
		{Desc: "broken", Body: `{"name":`, Broken: true},
	}
	for _, tc := range tests {
		t.Run(tc.Desc, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.Body))
			var got body
			err := httputil.DecodeJSON(req, &got)
			switch {
			case tc.WantErr != nil:
				assert.ErrorIs(t, err, tc.WantErr)
			case tc.Broken:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.Want, got.Name)
			}
		})
	}
}

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteErrorResponse(rr, http.StatusNotFound, "habit doesn't exist", errors.New("id 7"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"code":404,"message":"habit doesn't exist","details":"id 7"}`, rr.Body.String())
}

func TestWriteJSONResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteJSONResponse(rr, http.StatusCreated, map[string]int{"target": 8})
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"target":8}`, rr.Body.String())

	rr = httptest.NewRecorder()
	httputil.WriteNoContent(rr)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}
