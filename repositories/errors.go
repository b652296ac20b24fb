package repositories

import "errors"

var (
	// ErrNotFound 查询的文档不存在
	ErrNotFound = errors.New("not found")
	// ErrInvalidID 标识符不是合法的 ObjectID，必须在访问存储之前拦截
	ErrInvalidID = errors.New("invalid id")
)
