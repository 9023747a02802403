package service

import (
	"context"

	"interview_prep_client/internal/api"
	"interview_prep_client/internal/model"
	"interview_prep_client/internal/session"
)

type AuthService struct {
	client *api.Client
	store  *session.Store
}

func NewAuthService(client *api.Client, store *session.Store) *AuthService {
	return &AuthService{
		client: client,
		store:  store,
	}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register 注册成功即视为登录，返回前写入会话
func (s *AuthService) Register(ctx context.Context, email, password, username string) (*model.AuthResponse, error) {
	resp, err := api.Post[model.AuthResponse](ctx, s.client, "/api/v1/auth/register", RegisterRequest{
		Email:    email,
		Password: password,
		Username: username,
	})
	if err != nil {
		return nil, err
	}
	if err := s.store.Login(&resp.Data.User, resp.Data.Token); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Login 登录并写入会话
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	resp, err := api.Post[model.AuthResponse](ctx, s.client, "/api/v1/auth/login", LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	if err := s.store.Login(&resp.Data.User, resp.Data.Token); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Me 获取当前登录用户
func (s *AuthService) Me(ctx context.Context) (*model.User, error) {
	resp, err := api.Get[model.User](ctx, s.client, "/api/v1/auth/me")
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
