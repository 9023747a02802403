package session

import (
	"encoding/json"
	"sync"
	"time"

	"interview_prep_client/internal/model"
	"interview_prep_client/pkg/storage"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenKey = "token"
	userKey  = "user"
)

// Store 进程内唯一的登录态，内存镜像 + 本地持久化，
// isAuthenticated 只由 token 是否存在推导，清 token 的路径必然清它。
type Store struct {
	mu           sync.RWMutex
	kv           storage.KV
	user         *model.User
	token        string
	authed       bool
	onInvalidate []func()
}

// New 从本地存储恢复登录态，token 与用户信息齐全才算已登录
func New(kv storage.KV) (*Store, error) {
	s := &Store{kv: kv}

	token, ok, err := kv.Get(tokenKey)
	if err != nil {
		return nil, err
	}
	if !ok || token == "" {
		return s, nil
	}

	raw, ok, err := kv.Get(userKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return s, nil
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		// 存储损坏视同未登录
		return s, nil
	}

	s.user = &user
	s.token = token
	s.authed = true
	return s, nil
}

// Login 写入登录态并落盘，不发起任何网络请求
func (s *Store) Login(user *model.User, token string) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.kv.Set(tokenKey, token); err != nil {
		return err
	}
	if err := s.kv.Set(userKey, string(raw)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.token = token
	s.authed = true
	return nil
}

// Logout 清空内存与持久化的登录态
func (s *Store) Logout() error {
	if err := s.kv.Delete(tokenKey); err != nil {
		return err
	}
	if err := s.kv.Delete(userKey); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
	s.authed = false
	return nil
}

// UpdateUser 替换缓存的用户信息并重新落盘，不动 token
func (s *Store) UpdateUser(user *model.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.kv.Set(userKey, string(raw)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	return nil
}

// OnInvalidate 注册会话失效回调，导航等表现层行为由订阅方决定
func (s *Store) OnInvalidate(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onInvalidate = append(s.onInvalidate, fn)
}

// Invalidate 服务端判定未授权时调用：清登录态并通知订阅方
func (s *Store) Invalidate() {
	_ = s.Logout()

	s.mu.RLock()
	callbacks := make([]func(), len(s.onInvalidate))
	copy(callbacks, s.onInvalidate)
	s.mu.RUnlock()

	for _, fn := range callbacks {
		fn()
	}
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authed
}

// TokenExpiry 不校验签名地读取 token 的过期时间，仅用于本地提示
func (s *Store) TokenExpiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
