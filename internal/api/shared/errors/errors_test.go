package errors

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        *APIError
		wantStatus int
		wantJSON   string
	}{
		{
			name:       "bad request",
			err:        NewBadRequestError("Missing transaction hash"),
			wantStatus: http.StatusBadRequest,
			wantJSON:   `{"success":false,"code":"bad_request","message":"Missing transaction hash"}`,
		},
		{
			name:       "unauthorized",
			err:        NewUnauthorizedError("No token provided"),
			wantStatus: http.StatusUnauthorized,
			wantJSON:   `{"success":false,"code":"unauthorized","message":"No token provided"}`,
		},
		{
			name:       "not found",
			err:        NewNotFoundError("Transaction not found"),
			wantStatus: http.StatusNotFound,
			wantJSON:   `{"success":false,"code":"not_found","message":"Transaction not found"}`,
		},
		{
			name:       "database error carries cause",
			err:        NewDatabaseError("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantJSON:   `{"success":false,"code":"database_error","message":"Server error","error":"connection reset"}`,
		},
		{
			name:       "validation joins details",
			err:        NewValidationError("limit must be positive", "page must be positive"),
			wantStatus: http.StatusBadRequest,
			wantJSON:   `{"success":false,"code":"validation_failed","message":"Validation failed","error":"limit must be positive, page must be positive"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.StatusCode())

			data, err := json.Marshal(tt.err)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantJSON, string(data))
			assert.JSONEq(t, tt.wantJSON, tt.err.Error())
		})
	}
}
