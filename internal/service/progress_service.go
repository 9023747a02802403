package service

import (
	"context"
	"net/url"
	"strconv"

	"interview_prep_client/internal/api"
	"interview_prep_client/internal/model"
)

type ProgressService struct {
	client *api.Client
}

func NewProgressService(client *api.Client) *ProgressService {
	return &ProgressService{client: client}
}

// UpdateProgressRequest 进度上报，服务端按 (用户, 知识点) upsert
type UpdateProgressRequest struct {
	KnowledgePointID uint   `json:"knowledge_point_id"`
	Status           string `json:"status"`
	MasteryLevel     int    `json:"mastery_level"`
}

// List 获取学习进度列表（不分页），两个过滤参数为 0 时不带
func (s *ProgressService) List(ctx context.Context, knowledgeID, categoryID uint) ([]model.LearningProgress, error) {
	values := url.Values{}
	if knowledgeID > 0 {
		values.Set("knowledge_id", strconv.FormatUint(uint64(knowledgeID), 10))
	}
	if categoryID > 0 {
		values.Set("category_id", strconv.FormatUint(uint64(categoryID), 10))
	}
	resp, err := api.Get[[]model.LearningProgress](ctx, s.client, "/api/v1/learning/progress",
		api.WithQuery(values))
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Update 上报学习进度，返回 upsert 后的记录
func (s *ProgressService) Update(ctx context.Context, req UpdateProgressRequest) (*model.LearningProgress, error) {
	resp, err := api.Post[model.LearningProgress](ctx, s.client, "/api/v1/learning/progress", req)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Stats 获取学习统计
func (s *ProgressService) Stats(ctx context.Context) (*model.LearningStats, error) {
	resp, err := api.Get[model.LearningStats](ctx, s.client, "/api/v1/learning/stats")
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
