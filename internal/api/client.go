package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"interview_prep_client/internal/config"
	"interview_prep_client/internal/model"
	"interview_prep_client/internal/session"
	"interview_prep_client/pkg/monitoring"
	"interview_prep_client/pkg/tracing"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	requestFailedMessage = "请求失败"
	networkErrorMessage  = "网络错误"
)

// Error 归一化后的请求错误，code 为业务码或 HTTP 状态码，网络类失败为 -1
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Client 所有对服务端请求的唯一出口
type Client struct {
	http    *resty.Client
	store   *session.Store
	limiter *rate.Limiter
}

// New 构建客户端：统一超时与请求头，出站前注入 Bearer token，
// 重试只针对网络类失败与 5xx，业务错误与 401 从不重试。
func New(cfg *config.Config, store *session.Store) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.API.BaseURL).
		SetTimeout(cfg.API.Timeout).
		SetHeader("Content-Type", "application/json")

	c := &Client{http: httpClient, store: store}

	if cfg.RateLimit.RequestsPerSecond > 0 {
		burst := cfg.RateLimit.Burst
		if burst < 1 {
			burst = 1 // Wait(n=1) 要求 burst 至少为 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), burst)
	}

	httpClient.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if c.limiter != nil {
			if err := c.limiter.Wait(r.Context()); err != nil {
				return err
			}
		}
		if token := store.Token(); token != "" {
			r.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	})

	if cfg.Retry.Count > 0 {
		httpClient.
			SetRetryCount(cfg.Retry.Count).
			SetRetryWaitTime(cfg.Retry.WaitTime).
			SetRetryMaxWaitTime(cfg.Retry.MaxWaitTime).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				if err != nil {
					return true
				}
				return r.StatusCode() >= http.StatusInternalServerError
			})
	}

	return c
}

// Option 单次请求的附加参数
type Option func(*resty.Request)

func WithQuery(values url.Values) Option {
	return func(r *resty.Request) {
		r.SetQueryParamsFromValues(values)
	}
}

func WithPathParam(name, value string) Option {
	return func(r *resty.Request) {
		r.SetPathParam(name, value)
	}
}

func Get[T any](ctx context.Context, c *Client, path string, opts ...Option) (*model.Response[T], error) {
	return do[T](ctx, c, http.MethodGet, path, nil, opts...)
}

func Post[T any](ctx context.Context, c *Client, path string, body any, opts ...Option) (*model.Response[T], error) {
	return do[T](ctx, c, http.MethodPost, path, body, opts...)
}

func Put[T any](ctx context.Context, c *Client, path string, body any, opts ...Option) (*model.Response[T], error) {
	return do[T](ctx, c, http.MethodPut, path, body, opts...)
}

func Delete[T any](ctx context.Context, c *Client, path string, opts ...Option) (*model.Response[T], error) {
	return do[T](ctx, c, http.MethodDelete, path, nil, opts...)
}

// do 发起请求并把三类失败归一化：
// 无响应 → {-1, 错误文本}；非 2xx → {响应体业务码或状态码, 响应体消息}；
// 2xx 且 code != 0 → {code, 服务端消息原样}。401 额外触发会话失效。
func do[T any](ctx context.Context, c *Client, method, path string, body any, opts ...Option) (*model.Response[T], error) {
	ctx, span := tracing.Tracer.Start(ctx, method+" "+path)
	defer span.End()

	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	for _, opt := range opts {
		opt(req)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		monitoring.ObserveRequest(method, path, "error", time.Since(start))
		msg := err.Error()
		if msg == "" {
			msg = networkErrorMessage
		}
		return nil, &Error{Code: -1, Message: msg}
	}
	monitoring.ObserveRequest(method, path, strconv.Itoa(resp.StatusCode()), time.Since(start))

	if resp.StatusCode() == http.StatusUnauthorized {
		c.store.Invalidate()
	}

	if !resp.IsSuccess() {
		var fail model.Response[json.RawMessage]
		_ = json.Unmarshal(resp.Body(), &fail)
		code := fail.Code
		if code == 0 {
			code = resp.StatusCode()
		}
		msg := fail.Message
		if msg == "" {
			msg = requestFailedMessage
		}
		return nil, &Error{Code: code, Message: msg}
	}

	var env model.Response[T]
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, &Error{Code: -1, Message: err.Error()}
	}
	if !env.IsSuccess() {
		msg := env.Message
		if msg == "" {
			msg = requestFailedMessage
		}
		return nil, &Error{Code: env.Code, Message: msg}
	}
	return &env, nil
}
