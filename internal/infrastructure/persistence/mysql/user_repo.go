package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookhub/internal/domain/user"
	apperrors "github.com/xiebiao/bookhub/pkg/errors"
)

// userRepository 用户只读仓储
// users表由用户服务维护,这里只查询展示需要的字段
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储
func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&UserModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "查询用户失败")
	}
	return count > 0, nil
}

// FindByIDs 批量查询用户资料
func (r *userRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]*user.Profile, error) {
	profiles := make(map[int64]*user.Profile, len(ids))
	if len(ids) == 0 {
		return profiles, nil
	}

	var models []UserModel
	if err := conn(ctx, r.db).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询用户失败")
	}

	for _, m := range models {
		profiles[m.ID] = &user.Profile{
			ID:             m.ID,
			Username:       m.Username,
			ProfilePicture: m.ProfilePicture,
		}
	}
	return profiles, nil
}
