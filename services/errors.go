package services

import (
	"errors"
	"fmt"
)

// ErrValidation 输入校验失败，在任何存储调用之前返回
var ErrValidation = errors.New("invalid input")

// ProductNotFoundError 下单引用了不存在的商品，整单拒绝，不写入任何订单
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}
