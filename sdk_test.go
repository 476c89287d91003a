package bffsdk

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubeagi/bff-sdk-go/arcadia"
)

func newTestSdk(t *testing.T, handler http.HandlerFunc) *Sdk {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL+DefaultEndpoint,
		WithHTTPClient(srv.Client()),
		WithResponseMiddleware(func(*Response) {}),
	)
	return NewSdk(client, NewGroup(GroupConfig{}))
}

func TestSdkOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("get-dataset", func(t *testing.T) {
		sdk := newTestSdk(t, func(w http.ResponseWriter, r *http.Request) {
			var p payload
			byt, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(byt, &p))
			assert.Equal(t, "getDataset", p.OperationName)

			_, _ = w.Write([]byte(`{"data":{"Dataset":{"getDataset":{"name":"d1","namespace":"default","displayName":"D1","contentType":"text"}}}}`))
		})

		out, err := sdk.GetDataset(ctx, "d1", "default")
		require.NoError(t, err)
		assert.Equal(t, "D1", out.Dataset.GetDataset.DisplayName)
	})

	t.Run("list-models", func(t *testing.T) {
		sdk := newTestSdk(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "listModels", r.URL.Query().Get("o"))
			_, _ = w.Write([]byte(`{"data":{"Model":{"listModels":{"totalCount":1,"nodes":[{"name":"llama","namespace":"default","displayName":"Llama"}]}}}}`))
		})

		out, err := sdk.ListModels(ctx, arcadia.ListModelInput{Namespace: "default"})
		require.NoError(t, err)
		assert.Equal(t, 1, out.Model.ListModels.TotalCount)
		require.Len(t, out.Model.ListModels.Nodes, 1)
		assert.Equal(t, "llama", out.Model.ListModels.Nodes[0].Name)
	})
}

func TestSdkHooks(t *testing.T) {
	ctx := context.Background()

	t.Run("caches-by-key", func(t *testing.T) {
		var hits atomic.Int64
		sdk := newTestSdk(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte(`{"data":{"Model":{"getModel":{"name":"llama","namespace":"default","displayName":"Llama"}}}}`))
		})

		first := sdk.UseGetModel(ctx, "llama", "default")
		require.NoError(t, first.Err)
		require.NotNil(t, first.Data)
		assert.Equal(t, "llama", first.Data.Model.GetModel.Name)
		assert.False(t, first.Loading)

		second := sdk.UseGetModel(ctx, "llama", "default")
		require.NoError(t, second.Err)
		assert.Equal(t, int64(1), hits.Load())
	})

	t.Run("different-variables-different-entries", func(t *testing.T) {
		var hits atomic.Int64
		sdk := newTestSdk(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte(`{"data":{"Model":{"getModel":{"name":"x","namespace":"default","displayName":"X"}}}}`))
		})

		_ = sdk.UseGetModel(ctx, "a", "default")
		_ = sdk.UseGetModel(ctx, "b", "default")
		assert.Equal(t, int64(2), hits.Load())
	})

	t.Run("invalidate", func(t *testing.T) {
		var hits atomic.Int64
		sdk := newTestSdk(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte(`{"data":{"Dataset":{"getDataset":{"name":"d1","namespace":"default","displayName":"D1","contentType":"text"}}}}`))
		})

		_ = sdk.UseGetDataset(ctx, "d1", "default")
		sdk.Invalidate(ctx, BuildKey("GetDataset", map[string]any{"name": "d1", "namespace": "default"}))
		_ = sdk.UseGetDataset(ctx, "d1", "default")

		assert.Equal(t, int64(2), hits.Load())
	})

	t.Run("operation-tag-is-lowercase", func(t *testing.T) {
		sdk := newTestSdk(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "listKnowledgeBases", r.URL.Query().Get("o"))
			_, _ = w.Write([]byte(`{"data":{"KnowledgeBase":{"listKnowledgeBases":{"nodes":[]}}}}`))
		})

		res := sdk.UseListKnowledgeBases(ctx, arcadia.ListKnowledgeBaseInput{Namespace: "default"})
		require.NoError(t, res.Err)
	})

	t.Run("errors-surface-with-partial-data", func(t *testing.T) {
		sdk := newTestSdk(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":{"Dataset":{"getDataset":null}},"errors":[{"message":"not found"}]}`))
		})

		res := sdk.UseGetDataset(ctx, "missing", "default")
		assert.Error(t, res.Err)
		assert.False(t, res.Loading)
		require.NotNil(t, res.Data)
	})
}
