package chapter

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookhub/internal/application/view"
	"github.com/xiebiao/bookhub/internal/domain/chapter"
	"github.com/xiebiao/bookhub/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookhub/pkg/metrics"
	"github.com/xiebiao/bookhub/pkg/tracing"
)

// AppendContentUseCase 向章节追加一批段落
//
// 并发问题:两个请求同时追加到同一章节
//
//	A: MAX(paragraph_number) → 3    B: MAX(paragraph_number) → 3
//	A: 插入4,5                       B: 插入4,5 → 序号冲突
//
// 解决:事务内先 SELECT ... FOR UPDATE 锁定章节行,
// 同一章节的追加串行执行;UNIQUE(chapter_id, paragraph_number)兜底
type AppendContentUseCase struct {
	chapterRepo chapter.Repository
	txManager   *mysql.TxManager
}

// NewAppendContentUseCase 创建用例
func NewAppendContentUseCase(chapterRepo chapter.Repository, txManager *mysql.TxManager) *AppendContentUseCase {
	return &AppendContentUseCase{
		chapterRepo: chapterRepo,
		txManager:   txManager,
	}
}

// Execute 返回新建的段落,序号从当前最大序号+1开始连续递增
func (uc *AppendContentUseCase) Execute(ctx context.Context, chapterID int64, contents []string) (resp []view.Paragraph, err error) {
	ctx, span := tracing.StartSpan(ctx, "chapter.AppendContent")
	span.SetAttributes(
		attribute.Int64("chapter.id", chapterID),
		attribute.Int("paragraphs", len(contents)),
	)
	defer func() { tracing.EndSpan(span, err) }()

	start := time.Now()
	var paragraphs []*chapter.Paragraph
	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		if _, err := uc.chapterRepo.LockByID(ctx, chapterID); err != nil {
			if errors.Is(err, chapter.ErrChapterNotFound) {
				return chapter.ErrChapterReferenceNotFound
			}
			return err
		}

		maxNumber, err := uc.chapterRepo.MaxParagraphNumber(ctx, chapterID)
		if err != nil {
			return err
		}

		paragraphs = chapter.NumberParagraphs(chapterID, maxNumber, contents)
		return uc.chapterRepo.CreateParagraphs(ctx, paragraphs)
	})
	if err != nil {
		return nil, err
	}

	metrics.ObserveHistogram(metrics.ParagraphAppendDuration, time.Since(start).Seconds())
	metrics.AddCounter(metrics.ParagraphsAppendedTotal, len(paragraphs))
	return view.NewParagraphs(paragraphs), nil
}
