package model

import "time"

// User 用户信息，客户端只读镜像，仅 username/avatar 可通过更新接口修改
type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse 注册/登录成功后的返回
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
