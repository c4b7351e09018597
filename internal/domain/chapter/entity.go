package chapter

import (
	"strings"
	"time"
)

// Chapter 章节实体
// 设计说明:
// 1. 章节属于某本图书,发布状态独立于图书
// 2. 创建时没有内容,内容通过追加段落逐批写入
type Chapter struct {
	ID        int64
	BookID    int64
	Title     string
	Published bool
	CreatedAt time.Time
}

// NewChapter 创建未发布的空章节
func NewChapter(bookID int64, title string) *Chapter {
	return &Chapter{
		BookID:    bookID,
		Title:     strings.TrimSpace(title),
		Published: false,
	}
}

// Paragraph 段落(创建后不可修改)
// Number从1开始,在章节内唯一且连续
type Paragraph struct {
	ID        int64
	ChapterID int64
	Number    int
	Content   string
}

// NumberParagraphs 为一批段落分配连续序号
// maxNumber是章节当前最大序号(没有段落时为0),新段落从maxNumber+1开始
func NumberParagraphs(chapterID int64, maxNumber int, contents []string) []*Paragraph {
	paragraphs := make([]*Paragraph, len(contents))
	for i, content := range contents {
		paragraphs[i] = &Paragraph{
			ChapterID: chapterID,
			Number:    maxNumber + i + 1,
			Content:   content,
		}
	}
	return paragraphs
}
