package comment

import (
	"strings"
	"time"
)

// Target 评论对象
// 图书评论和章节评论结构相同,但分表存储
type Target int

const (
	TargetBook Target = iota + 1
	TargetChapter
)

func (t Target) String() string {
	switch t {
	case TargetBook:
		return "book"
	case TargetChapter:
		return "chapter"
	default:
		return "unknown"
	}
}

// Comment 评论实体(只增不改,可单独删除)
type Comment struct {
	ID        int64
	Target    Target
	TargetID  int64 // BookID或ChapterID
	UserID    int64
	Body      string
	CreatedAt time.Time
}

// NewComment 创建评论
func NewComment(target Target, targetID, userID int64, body string) *Comment {
	return &Comment{
		Target:   target,
		TargetID: targetID,
		UserID:   userID,
		Body:     strings.TrimSpace(body),
	}
}
