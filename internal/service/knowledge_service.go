package service

import (
	"context"
	"net/url"
	"strconv"

	"interview_prep_client/internal/api"
	"interview_prep_client/internal/model"
)

type KnowledgeService struct {
	client *api.Client
}

func NewKnowledgeService(client *api.Client) *KnowledgeService {
	return &KnowledgeService{client: client}
}

// ListKnowledgeQuery 列表过滤条件，零值字段不出现在请求里
type ListKnowledgeQuery struct {
	Page       int
	PageSize   int
	CategoryID uint
	Difficulty string
	Frequency  string
	Search     string
}

func (q ListKnowledgeQuery) values() url.Values {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if q.CategoryID > 0 {
		values.Set("category_id", strconv.FormatUint(uint64(q.CategoryID), 10))
	}
	if q.Difficulty != "" {
		values.Set("difficulty", q.Difficulty)
	}
	if q.Frequency != "" {
		values.Set("frequency", q.Frequency)
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	return values
}

// Categories 获取分类列表
func (s *KnowledgeService) Categories(ctx context.Context) ([]model.Category, error) {
	resp, err := api.Get[[]model.Category](ctx, s.client, "/api/v1/categories")
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// List 获取知识点分页列表
func (s *KnowledgeService) List(ctx context.Context, q ListKnowledgeQuery) (*model.PageResult[model.KnowledgePoint], error) {
	resp, err := api.Get[model.PageResult[model.KnowledgePoint]](ctx, s.client, "/api/v1/knowledge",
		api.WithQuery(q.values()))
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Get 获取知识点详情
func (s *KnowledgeService) Get(ctx context.Context, id uint) (*model.KnowledgePoint, error) {
	resp, err := api.Get[model.KnowledgePoint](ctx, s.client, "/api/v1/knowledge/{id}",
		api.WithPathParam("id", strconv.FormatUint(uint64(id), 10)))
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Graph 获取知识图谱，categoryID 为 0 时不过滤
func (s *KnowledgeService) Graph(ctx context.Context, categoryID uint) (*model.GraphData, error) {
	values := url.Values{}
	if categoryID > 0 {
		values.Set("category_id", strconv.FormatUint(uint64(categoryID), 10))
	}
	resp, err := api.Get[model.GraphData](ctx, s.client, "/api/v1/knowledge/graph",
		api.WithQuery(values))
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
