package book

import (
	apperrors "github.com/xiebiao/bookhub/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在(作为操作主体)
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrBookReferenceNotFound 图书不存在(作为创建章节/评论的目标)
	ErrBookReferenceNotFound = apperrors.New(apperrors.ErrCodeReferenceNotFound, "关联的图书不存在")
)
