package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"partylink/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	InvalidJSON = `{"invalid": json}`

	testHostID  = uuid.MustParse("6f1d2c3b-4a5e-4f60-8a7b-9c0d1e2f3a4b")
	testEventID = uuid.MustParse("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11")
)

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	if s, ok := data.(string); ok {
		return bytes.NewBufferString(s)
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withTestSession 代替 SessionGuard 放入固定的 host session
func withTestSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.SetSession(c, &auth.Session{HostID: testHostID, Email: "host@example.com"})
		c.Next()
	}
}

func decodeBody(t *testing.T, body *bytes.Buffer, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body.Bytes(), out))
}
