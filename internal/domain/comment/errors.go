package comment

import (
	apperrors "github.com/xiebiao/bookhub/pkg/errors"
)

// ErrCommentNotFound 评论不存在
var ErrCommentNotFound = apperrors.New(apperrors.ErrCodeCommentNotFound, "评论不存在")
