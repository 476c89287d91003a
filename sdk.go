package bffsdk

import (
	"context"
	"encoding/json"

	"github.com/kubeagi/bff-sdk-go/arcadia"
)

// Sdk bundles the GraphQL client with a cached fetch group and exposes one
// typed method per BFF operation. Mutations always hit the network; the
// Use* variants serve reads through the cache.
type Sdk struct {
	client *Client
	group  *Group
}

// NewSdk returns an Sdk backed by client. A nil group disables caching
// defaults and gets replaced with a fresh one.
func NewSdk(client *Client, group *Group) *Sdk {
	if group == nil {
		group = NewGroup(GroupConfig{})
	}
	return &Sdk{client: client, group: group}
}

// Client exposes the underlying GraphQL client.
func (s *Sdk) Client() *Client { return s.client }

func (s *Sdk) ListDatasets(ctx context.Context, input *arcadia.ListDatasetInput, versionsInput arcadia.ListVersionedDatasetInput, filesInput *arcadia.FileFilter) (*arcadia.ListDatasetsResponse, error) {
	return arcadia.ListDatasets(ctx, s.client, input, versionsInput, filesInput)
}

func (s *Sdk) GetDataset(ctx context.Context, name, namespace string) (*arcadia.GetDatasetResponse, error) {
	return arcadia.GetDataset(ctx, s.client, name, namespace)
}

func (s *Sdk) CreateDataset(ctx context.Context, input *arcadia.CreateDatasetInput) (*arcadia.CreateDatasetResponse, error) {
	return arcadia.CreateDataset(ctx, s.client, input)
}

func (s *Sdk) UpdateDataset(ctx context.Context, input *arcadia.UpdateDatasetInput) (*arcadia.UpdateDatasetResponse, error) {
	return arcadia.UpdateDataset(ctx, s.client, input)
}

func (s *Sdk) DeleteDatasets(ctx context.Context, input *arcadia.DeleteDatasetInput) (*arcadia.DeleteDatasetsResponse, error) {
	return arcadia.DeleteDatasets(ctx, s.client, input)
}

func (s *Sdk) ListDatasources(ctx context.Context, input arcadia.ListDatasourceInput) (*arcadia.ListDatasourcesResponse, error) {
	return arcadia.ListDatasources(ctx, s.client, input)
}

func (s *Sdk) GetDatasource(ctx context.Context, name, namespace string) (*arcadia.GetDatasourceResponse, error) {
	return arcadia.GetDatasource(ctx, s.client, name, namespace)
}

func (s *Sdk) CreateDatasource(ctx context.Context, input arcadia.CreateDatasourceInput) (*arcadia.CreateDatasourceResponse, error) {
	return arcadia.CreateDatasource(ctx, s.client, input)
}

func (s *Sdk) UpdateDatasource(ctx context.Context, input *arcadia.UpdateDatasourceInput) (*arcadia.UpdateDatasourceResponse, error) {
	return arcadia.UpdateDatasource(ctx, s.client, input)
}

func (s *Sdk) DeleteDatasource(ctx context.Context, input arcadia.DeleteDatasourceInput) (*arcadia.DeleteDatasourceResponse, error) {
	return arcadia.DeleteDatasource(ctx, s.client, input)
}

func (s *Sdk) ListModels(ctx context.Context, input arcadia.ListModelInput) (*arcadia.ListModelsResponse, error) {
	return arcadia.ListModels(ctx, s.client, input)
}

func (s *Sdk) GetModel(ctx context.Context, name, namespace string) (*arcadia.GetModelResponse, error) {
	return arcadia.GetModel(ctx, s.client, name, namespace)
}

func (s *Sdk) CreateModel(ctx context.Context, input arcadia.CreateModelInput) (*arcadia.CreateModelResponse, error) {
	return arcadia.CreateModel(ctx, s.client, input)
}

func (s *Sdk) UpdateModel(ctx context.Context, input *arcadia.UpdateModelInput) (*arcadia.UpdateModelResponse, error) {
	return arcadia.UpdateModel(ctx, s.client, input)
}

func (s *Sdk) DeleteModel(ctx context.Context, input *arcadia.DeleteModelInput) (*arcadia.DeleteModelResponse, error) {
	return arcadia.DeleteModel(ctx, s.client, input)
}

func (s *Sdk) ListVersionedDatasets(ctx context.Context, input arcadia.ListVersionedDatasetInput, fileInput *arcadia.FileFilter) (*arcadia.ListVersionedDatasetsResponse, error) {
	return arcadia.ListVersionedDatasets(ctx, s.client, input, fileInput)
}

func (s *Sdk) GetVersionedDataset(ctx context.Context, name, namespace string, fileInput *arcadia.FileFilter) (*arcadia.GetVersionedDatasetResponse, error) {
	return arcadia.GetVersionedDataset(ctx, s.client, name, namespace, fileInput)
}

func (s *Sdk) CreateVersionedDataset(ctx context.Context, input arcadia.CreateVersionedDatasetInput) (*arcadia.CreateVersionedDatasetResponse, error) {
	return arcadia.CreateVersionedDataset(ctx, s.client, input)
}

func (s *Sdk) UpdateVersionedDataset(ctx context.Context, input arcadia.UpdateVersionedDatasetInput) (*arcadia.UpdateVersionedDatasetResponse, error) {
	return arcadia.UpdateVersionedDataset(ctx, s.client, input)
}

func (s *Sdk) DeleteVersionedDatasets(ctx context.Context, input arcadia.DeleteVersionedDatasetInput) (*arcadia.DeleteVersionedDatasetsResponse, error) {
	return arcadia.DeleteVersionedDatasets(ctx, s.client, input)
}

func (s *Sdk) ListEmbedders(ctx context.Context, input arcadia.ListEmbedderInput) (*arcadia.ListEmbeddersResponse, error) {
	return arcadia.ListEmbedders(ctx, s.client, input)
}

func (s *Sdk) GetEmbedder(ctx context.Context, name, namespace string) (*arcadia.GetEmbedderResponse, error) {
	return arcadia.GetEmbedder(ctx, s.client, name, namespace)
}

func (s *Sdk) CreateEmbedder(ctx context.Context, input arcadia.CreateEmbedderInput) (*arcadia.CreateEmbedderResponse, error) {
	return arcadia.CreateEmbedder(ctx, s.client, input)
}

func (s *Sdk) UpdateEmbedder(ctx context.Context, input *arcadia.UpdateEmbedderInput) (*arcadia.UpdateEmbedderResponse, error) {
	return arcadia.UpdateEmbedder(ctx, s.client, input)
}

func (s *Sdk) DeleteEmbedder(ctx context.Context, input arcadia.DeleteEmbedderInput) (*arcadia.DeleteEmbedderResponse, error) {
	return arcadia.DeleteEmbedder(ctx, s.client, input)
}

func (s *Sdk) ListKnowledgeBases(ctx context.Context, input arcadia.ListKnowledgeBaseInput) (*arcadia.ListKnowledgeBasesResponse, error) {
	return arcadia.ListKnowledgeBases(ctx, s.client, input)
}

func (s *Sdk) GetKnowledgeBase(ctx context.Context, name, namespace string) (*arcadia.GetKnowledgeBaseResponse, error) {
	return arcadia.GetKnowledgeBase(ctx, s.client, name, namespace)
}

func (s *Sdk) CreateKnowledgeBase(ctx context.Context, input arcadia.CreateKnowledgeBaseInput) (*arcadia.CreateKnowledgeBaseResponse, error) {
	return arcadia.CreateKnowledgeBase(ctx, s.client, input)
}

func (s *Sdk) UpdateKnowledgeBase(ctx context.Context, input *arcadia.UpdateKnowledgeBaseInput) (*arcadia.UpdateKnowledgeBaseResponse, error) {
	return arcadia.UpdateKnowledgeBase(ctx, s.client, input)
}

func (s *Sdk) DeleteKnowledgeBase(ctx context.Context, input arcadia.DeleteKnowledgeBaseInput) (*arcadia.DeleteKnowledgeBaseResponse, error) {
	return arcadia.DeleteKnowledgeBase(ctx, s.client, input)
}

// use runs one cached read: key identifies the operation plus its
// variables, fetch goes through the client so the request middleware and
// error classification still apply.
func (s *Sdk) use(ctx context.Context, key Key, operation, query string, variables map[string]any) Result {
	return s.group.Fetch(ctx, key, func(ctx context.Context) (json.RawMessage, error) {
		return s.client.Do(ctx, operation, query, variables)
	})
}

// UseListDatasets serves listDatasets through the cache.
func (s *Sdk) UseListDatasets(ctx context.Context, input *arcadia.ListDatasetInput, versionsInput arcadia.ListVersionedDatasetInput, filesInput *arcadia.FileFilter) Resource[arcadia.ListDatasetsResponse] {
	vars := map[string]any{
		"input":         input,
		"versionsInput": versionsInput,
		"filesInput":    filesInput,
	}
	key := BuildKey("ListDatasets", vars)
	res := s.use(ctx, key, "listDatasets", arcadia.ListDatasets_Operation, vars)
	return asResource[arcadia.ListDatasetsResponse](res)
}

// UseGetDataset serves getDataset through the cache.
func (s *Sdk) UseGetDataset(ctx context.Context, name, namespace string) Resource[arcadia.GetDatasetResponse] {
	vars := map[string]any{"name": name, "namespace": namespace}
	key := BuildKey("GetDataset", vars)
	res := s.use(ctx, key, "getDataset", arcadia.GetDataset_Operation, vars)
	return asResource[arcadia.GetDatasetResponse](res)
}

// UseListDatasources serves listDatasources through the cache.
func (s *Sdk) UseListDatasources(ctx context.Context, input arcadia.ListDatasourceInput) Resource[arcadia.ListDatasourcesResponse] {
	vars := map[string]any{"input": input}
	key := BuildKey("ListDatasources", vars)
	res := s.use(ctx, key, "listDatasources", arcadia.ListDatasources_Operation, vars)
	return asResource[arcadia.ListDatasourcesResponse](res)
}

// UseGetDatasource serves getDatasource through the cache.
func (s *Sdk) UseGetDatasource(ctx context.Context, name, namespace string) Resource[arcadia.GetDatasourceResponse] {
	vars := map[string]any{"name": name, "namespace": namespace}
	key := BuildKey("GetDatasource", vars)
	res := s.use(ctx, key, "getDatasource", arcadia.GetDatasource_Operation, vars)
	return asResource[arcadia.GetDatasourceResponse](res)
}

// UseListModels serves listModels through the cache.
func (s *Sdk) UseListModels(ctx context.Context, input arcadia.ListModelInput) Resource[arcadia.ListModelsResponse] {
	vars := map[string]any{"input": input}
	key := BuildKey("ListModels", vars)
	res := s.use(ctx, key, "listModels", arcadia.ListModels_Operation, vars)
	return asResource[arcadia.ListModelsResponse](res)
}

// UseGetModel serves getModel through the cache.
func (s *Sdk) UseGetModel(ctx context.Context, name, namespace string) Resource[arcadia.GetModelResponse] {
	vars := map[string]any{"name": name, "namespace": namespace}
	key := BuildKey("GetModel", vars)
	res := s.use(ctx, key, "getModel", arcadia.GetModel_Operation, vars)
	return asResource[arcadia.GetModelResponse](res)
}

// UseGetVersionedDataset serves getVersionedDataset through the cache.
func (s *Sdk) UseGetVersionedDataset(ctx context.Context, name, namespace string, fileInput *arcadia.FileFilter) Resource[arcadia.GetVersionedDatasetResponse] {
	vars := map[string]any{
		"name":      name,
		"namespace": namespace,
		"fileInput": fileInput,
	}
	key := BuildKey("GetVersionedDataset", vars)
	res := s.use(ctx, key, "getVersionedDataset", arcadia.GetVersionedDataset_Operation, vars)
	return asResource[arcadia.GetVersionedDatasetResponse](res)
}

// UseListVersionedDatasets serves listVersionedDatasets through the cache.
func (s *Sdk) UseListVersionedDatasets(ctx context.Context, input arcadia.ListVersionedDatasetInput, fileInput *arcadia.FileFilter) Resource[arcadia.ListVersionedDatasetsResponse] {
	vars := map[string]any{"input": input, "fileInput": fileInput}
	key := BuildKey("ListVersionedDatasets", vars)
	res := s.use(ctx, key, "listVersionedDatasets", arcadia.ListVersionedDatasets_Operation, vars)
	return asResource[arcadia.ListVersionedDatasetsResponse](res)
}

// UseListEmbedders serves listEmbedders through the cache.
func (s *Sdk) UseListEmbedders(ctx context.Context, input arcadia.ListEmbedderInput) Resource[arcadia.ListEmbeddersResponse] {
	vars := map[string]any{"input": input}
	key := BuildKey("ListEmbedders", vars)
	res := s.use(ctx, key, "listEmbedders", arcadia.ListEmbedders_Operation, vars)
	return asResource[arcadia.ListEmbeddersResponse](res)
}

// UseGetEmbedder serves getEmbedder through the cache.
func (s *Sdk) UseGetEmbedder(ctx context.Context, name, namespace string) Resource[arcadia.GetEmbedderResponse] {
	vars := map[string]any{"name": name, "namespace": namespace}
	key := BuildKey("GetEmbedder", vars)
	res := s.use(ctx, key, "getEmbedder", arcadia.GetEmbedder_Operation, vars)
	return asResource[arcadia.GetEmbedderResponse](res)
}

// UseListKnowledgeBases serves listKnowledgeBases through the cache.
func (s *Sdk) UseListKnowledgeBases(ctx context.Context, input arcadia.ListKnowledgeBaseInput) Resource[arcadia.ListKnowledgeBasesResponse] {
	vars := map[string]any{"input": input}
	key := BuildKey("ListKnowledgeBases", vars)
	res := s.use(ctx, key, "listKnowledgeBases", arcadia.ListKnowledgeBases_Operation, vars)
	return asResource[arcadia.ListKnowledgeBasesResponse](res)
}

// UseGetKnowledgeBase serves getKnowledgeBase through the cache.
func (s *Sdk) UseGetKnowledgeBase(ctx context.Context, name, namespace string) Resource[arcadia.GetKnowledgeBaseResponse] {
	vars := map[string]any{"name": name, "namespace": namespace}
	key := BuildKey("GetKnowledgeBase", vars)
	res := s.use(ctx, key, "getKnowledgeBase", arcadia.GetKnowledgeBase_Operation, vars)
	return asResource[arcadia.GetKnowledgeBaseResponse](res)
}

// Invalidate drops the cached entry for a hook so the next Use* call hits
// the network. The key must be built the same way the hook builds it.
func (s *Sdk) Invalidate(ctx context.Context, key Key) {
	s.group.Invalidate(ctx, key)
}
