package service

import "errors"

// 业务错误，由handler映射到HTTP状态码
var (
	// ErrTranslationNotFound 翻译记录不存在
	ErrTranslationNotFound = errors.New("翻译记录不存在")
	// ErrInvalidRating 评分超出1-5范围
	ErrInvalidRating = errors.New("评分必须在1到5之间")
	// ErrValidation 请求参数校验失败
	ErrValidation = errors.New("参数校验失败")
)
