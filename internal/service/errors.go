package service

import "errors"

var (
	// ErrNotFound 目标记录不存在
	ErrNotFound = errors.New("record not found")
	// ErrInvalidInput 输入校验失败
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyCart 空购物车不能结算
	ErrEmptyCart = errors.New("cart is empty")
)
