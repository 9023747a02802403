package util

import "errors"

var (
	ErrNotLoggedIn    = errors.New("未登录，请先执行 login")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingField   = errors.New("缺少必填参数")
)
