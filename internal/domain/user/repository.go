package user

import (
	"context"

	apperrors "github.com/xiebiao/bookhub/pkg/errors"
)

var (
	// ErrAuthorNotFound 创建图书时作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeReferenceNotFound, "作者不存在")

	// ErrUserNotFound 评论用户不存在
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeReferenceNotFound, "用户不存在")
)

// Repository 用户只读仓储
type Repository interface {
	Exists(ctx context.Context, id int64) (bool, error)

	// FindByIDs 批量查询,不存在的ID不会出现在结果中
	FindByIDs(ctx context.Context, ids []int64) (map[int64]*Profile, error)
}
