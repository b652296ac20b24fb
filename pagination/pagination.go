package pagination

import (
	"fmt"
	"strconv"
)

const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

type Params struct {
	Limit  int64
	Offset int64
}

// Page 分页响应的游标信息，Limit 是本页实际返回的条数
type Page struct {
	Next     *int64 `json:"next,omitempty"`
	Previous *int64 `json:"previous,omitempty"`
	Limit    int64  `json:"limit"`
}

// ParseValues 解析 limit/offset 查询参数，空串取默认值，非法值在任何存储调用之前拒绝
func ParseValues(limitStr, offsetStr string) (Params, error) {
	params := Params{Limit: DefaultLimit, Offset: DefaultOffset}

	if limitStr != "" {
		limit, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil {
			return Params{}, fmt.Errorf("limit must be an integer, got %q", limitStr)
		}
		if limit <= 0 {
			return Params{}, fmt.Errorf("limit must be >= 1, got %d", limit)
		}
		params.Limit = limit
	}

	if offsetStr != "" {
		offset, err := strconv.ParseInt(offsetStr, 10, 64)
		if err != nil {
			return Params{}, fmt.Errorf("offset must be an integer, got %q", offsetStr)
		}
		if offset < 0 {
			return Params{}, fmt.Errorf("offset must be >= 0, got %d", offset)
		}
		params.Offset = offset
	}

	return params, nil
}

// NewPage 根据总数计算 next/previous 游标，越界的游标直接省略
func NewPage(offset, limit, returned, total int64) Page {
	page := Page{Limit: returned}

	// offset+limit 可能溢出，改写成减法判断（total ≥ 0 且 limit ≥ 0 时安全）
	if offset < total-limit {
		next := offset + limit
		page.Next = &next
	}

	if offset > 0 {
		previous := offset - limit
		if previous < 0 {
			previous = 0
		}
		page.Previous = &previous
	}

	return page
}
