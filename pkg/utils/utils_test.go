package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	id, err := GenerateID("grafico")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "grafico_"))
	assert.Len(t, id, len("grafico_")+8)

	other, err := GenerateID("grafico")
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", PrettyJson(map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}", PrettyJson([]byte(`{"a":1}`)))
	assert.Equal(t, "not json", PrettyJson([]byte("not json")))
}

func TestCheckStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/falha" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(strings.Repeat("x", 1024)))
	}))
	defer server.Close()

	require.NoError(t, CheckStatus(context.Background(), server.Client(), server.URL+"/ok"))
	assert.Error(t, CheckStatus(context.Background(), server.Client(), server.URL+"/falha"))
	assert.Error(t, CheckStatus(context.Background(), server.Client(), "http://127.0.0.1:0"))
}
