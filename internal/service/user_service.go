package service

import (
	"context"
	"strconv"

	"interview_prep_client/internal/api"
	"interview_prep_client/internal/model"
)

type UserService struct {
	client *api.Client
}

func NewUserService(client *api.Client) *UserService {
	return &UserService{client: client}
}

// UpdateUserRequest 仅 username/avatar 可修改，空字段不提交
type UpdateUserRequest struct {
	Username string `json:"username,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// Get 获取用户信息
func (s *UserService) Get(ctx context.Context, id uint) (*model.User, error) {
	resp, err := api.Get[model.User](ctx, s.client, "/api/v1/users/{id}",
		api.WithPathParam("id", strconv.FormatUint(uint64(id), 10)))
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Update 更新用户信息，返回更新后的记录
func (s *UserService) Update(ctx context.Context, id uint, req UpdateUserRequest) (*model.User, error) {
	resp, err := api.Put[model.User](ctx, s.client, "/api/v1/users/{id}", req,
		api.WithPathParam("id", strconv.FormatUint(uint64(id), 10)))
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
