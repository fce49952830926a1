package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaHandler_Root(t *testing.T) {
	t.Parallel()

	t.Run("lists the service endpoints", func(t *testing.T) {
		t.Parallel()
		handler := NewMetaHandler(false)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.Root(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp MetaResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, ServiceName, resp.Message)
		assert.Equal(t, ServiceVersion, resp.Version)
		assert.Contains(t, resp.Endpoints, "register")
		assert.Contains(t, resp.Endpoints, "tasks")
		assert.Empty(t, resp.Docs, "docs pointer is hidden outside dev mode")
	})

	t.Run("advertises docs in dev mode", func(t *testing.T) {
		t.Parallel()
		handler := NewMetaHandler(true)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.Root(rec, req)

		var resp MetaResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "/docs", resp.Docs)
	})
}

func TestMetaHandler_Docs(t *testing.T) {
	t.Parallel()

	handler := NewMetaHandler(true)

	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	rec := httptest.NewRecorder()
	handler.Docs(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var docs []endpointDoc
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	assert.NotEmpty(t, docs)
	for _, doc := range docs {
		assert.NotEmpty(t, doc.Method)
		assert.NotEmpty(t, doc.Path)
	}
}
