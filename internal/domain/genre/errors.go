package genre

import (
	apperrors "github.com/xiebiao/bookhub/pkg/errors"
)

// ErrInvalidGenre 引用了不存在的分类ID
var ErrInvalidGenre = apperrors.New(apperrors.ErrCodeInvalidReference, "分类不存在")
