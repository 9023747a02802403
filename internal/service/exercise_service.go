package service

import (
	"context"
	"net/url"
	"strconv"

	"interview_prep_client/internal/api"
	"interview_prep_client/internal/model"
)

type ExerciseService struct {
	client *api.Client
}

func NewExerciseService(client *api.Client) *ExerciseService {
	return &ExerciseService{client: client}
}

// ListExercisesQuery 练习题列表过滤条件
type ListExercisesQuery struct {
	Page        int
	PageSize    int
	KnowledgeID uint
	Difficulty  string
}

func (q ListExercisesQuery) values() url.Values {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if q.KnowledgeID > 0 {
		values.Set("knowledge_id", strconv.FormatUint(uint64(q.KnowledgeID), 10))
	}
	if q.Difficulty != "" {
		values.Set("difficulty", q.Difficulty)
	}
	return values
}

type submitAnswerRequest struct {
	Answer []string `json:"answer"`
}

// List 获取练习题分页列表
func (s *ExerciseService) List(ctx context.Context, q ListExercisesQuery) (*model.PageResult[model.Exercise], error) {
	resp, err := api.Get[model.PageResult[model.Exercise]](ctx, s.client, "/api/v1/exercises",
		api.WithQuery(q.values()))
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Get 获取练习题详情
func (s *ExerciseService) Get(ctx context.Context, id uint) (*model.Exercise, error) {
	resp, err := api.Get[model.Exercise](ctx, s.client, "/api/v1/exercises/{id}",
		api.WithPathParam("id", strconv.FormatUint(uint64(id), 10)))
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Submit 提交答案，正确答案在返回前解码为字符串数组
func (s *ExerciseService) Submit(ctx context.Context, id uint, answer []string) (*model.SubmitResult, error) {
	resp, err := api.Post[model.SubmitResult](ctx, s.client, "/api/v1/exercises/{id}/submit",
		submitAnswerRequest{Answer: answer},
		api.WithPathParam("id", strconv.FormatUint(uint64(id), 10)))
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// WrongList 获取错题分页列表
func (s *ExerciseService) WrongList(ctx context.Context, page, pageSize int) (*model.PageResult[model.WrongExercise], error) {
	values := url.Values{}
	if page > 0 {
		values.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		values.Set("page_size", strconv.Itoa(pageSize))
	}
	resp, err := api.Get[model.PageResult[model.WrongExercise]](ctx, s.client, "/api/v1/exercises/wrong",
		api.WithQuery(values))
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
