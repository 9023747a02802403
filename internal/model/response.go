package model

// Response 统一响应结构，code == 0 表示业务成功
type Response[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// IsSuccess 业务层成功与否只看 code，与 HTTP 状态码无关
func (r *Response[T]) IsSuccess() bool {
	return r.Code == 0
}

// PageResult 分页响应结构
type PageResult[T any] struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Items    []T `json:"items"`
}
