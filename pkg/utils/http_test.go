package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBody(t *testing.T) {
	type payload struct {
		Reason string `json:"reason"`
	}

	testCases := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "single object", body: `{"reason":"late"}`, want: "late"},
		{name: "trailing newline", body: "{\"reason\":\"late\"}\n", want: "late"},
		{name: "two objects", body: `{"reason":"a"}{"reason":"b"}`, wantErr: true},
		{name: "malformed", body: `{"reason":`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var p payload
			err := DecodeBody(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body)), &p)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, p.Reason)
		})
	}
}

func TestValidationResponses(t *testing.T) {
	type input struct {
		Quantity int `json:"quantity" validate:"required,gt=0"`
	}

	t.Run("validator errors use json names", func(t *testing.T) {
		err := NewValidator().Struct(input{})
		require.Error(t, err)
		assert.Equal(t, []string{"quantity"}, ValidationFields(err))

		rr := httptest.NewRecorder()
		require.NoError(t, WriteValidationError(rr, err))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), `"quantity":"required"`)
	})

	t.Run("field list", func(t *testing.T) {
		rr := httptest.NewRecorder()
		require.NoError(t, WriteFieldErrors(rr, "missing fields", []string{"weight", "storage_location"}))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"message":"missing fields","fields":{"weight":"invalid","storage_location":"invalid"}}`, rr.Body.String())
	})
}
