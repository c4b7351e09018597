// Package notification 定义关注者通知事件
// 通知是尽力而为的:发布方不等待结果,投递失败不影响业务操作
package notification

import "time"

// Kind 事件类型,同时作为MQ的routing key
type Kind string

const (
	// KindBookCreated 作者发布新书,通知作者的关注者
	KindBookCreated Kind = "book.created"
	// KindChapterPublished 章节发布,通知图书的关注者
	KindChapterPublished Kind = "chapter.published"
)

// Event 通知事件
type Event struct {
	Kind       Kind      `json:"kind"`
	AuthorID   int64     `json:"authorId,string,omitempty"`
	BookID     int64     `json:"bookId,string,omitempty"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher 事件发布者
// Publish必须立即返回,不能阻塞调用方
type Publisher interface {
	Publish(event Event)
}

// NewBookCreated 新书通知
func NewBookCreated(authorID, bookID int64, title string) Event {
	return Event{
		Kind:       KindBookCreated,
		AuthorID:   authorID,
		BookID:     bookID,
		Title:      title,
		Body:       "The author you follow has just published a new book.",
		OccurredAt: time.Now(),
	}
}

// NewChapterPublished 新章节通知
func NewChapterPublished(bookID int64, chapterTitle string) Event {
	return Event{
		Kind:       KindChapterPublished,
		BookID:     bookID,
		Title:      chapterTitle,
		Body:       "The book you follow has just published a new chapter.",
		OccurredAt: time.Now(),
	}
}
