package chapter

import (
	apperrors "github.com/xiebiao/bookhub/pkg/errors"
)

var (
	// ErrChapterNotFound 章节不存在
	ErrChapterNotFound = apperrors.New(apperrors.ErrCodeChapterNotFound, "章节不存在")

	// ErrChapterReferenceNotFound 追加内容/评论的目标章节不存在
	ErrChapterReferenceNotFound = apperrors.New(apperrors.ErrCodeReferenceNotFound, "关联的章节不存在")
)
