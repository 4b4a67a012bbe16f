package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStructuredLogger(t *testing.T) {
	tests := []struct {
		name   string
		status int
		level  string
		msg    string
	}{
		{"Success", http.StatusOK, "INFO", "request completed"},
		{"Partial Settlement", http.StatusMultiStatus, "WARN", "settlement incomplete"},
		{"Server Error", http.StatusInternalServerError, "ERROR", "server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			h := NewStructuredLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte("ok"))
			}))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/tournaments/t1/results", nil))

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tt.level, line["level"])
			assert.Equal(t, tt.msg, line["msg"])

			request := line["request"].(map[string]any)
			assert.Equal(t, "/tournaments/t1/results", request["path"])
			response := line["response"].(map[string]any)
			assert.Equal(t, float64(tt.status), response["status"])
			assert.Equal(t, float64(2), response["bytes"])
		})
	}
}
