package comment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookhub/internal/application/apptest"
	appcomment "github.com/xiebiao/bookhub/internal/application/comment"
	"github.com/xiebiao/bookhub/internal/domain/book"
	"github.com/xiebiao/bookhub/internal/domain/chapter"
	"github.com/xiebiao/bookhub/internal/domain/comment"
	"github.com/xiebiao/bookhub/internal/domain/user"
	"github.com/xiebiao/bookhub/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookhub/internal/infrastructure/persistence/mysql/dbtest"
	apperrors "github.com/xiebiao/bookhub/pkg/errors"
)

func TestCreateComment(t *testing.T) {
	ctx := context.Background()
	env := apptest.New(t)
	env.SeedUser(t, 1, "alice")
	env.SeedUser(t, 2, "bob")
	b := env.SeedBook(t, 1, "Dune", true)
	c := env.SeedChapter(t, b.ID, "Chapter 1", true)

	uc := appcomment.NewCreateCommentUseCase(env.Books, env.Chapters, env.Users, env.Comments, env.Assembler)

	tests := []struct {
		name    string
		req     appcomment.CreateCommentRequest
		wantErr error
	}{
		{
			name: "图书评论",
			req:  appcomment.CreateCommentRequest{Target: comment.TargetBook, TargetID: b.ID, UserID: 2, Body: " Great book "},
		},
		{
			name: "章节评论",
			req:  appcomment.CreateCommentRequest{Target: comment.TargetChapter, TargetID: c.ID, UserID: 2, Body: "Great chapter"},
		},
		{
			name:    "图书不存在",
			req:     appcomment.CreateCommentRequest{Target: comment.TargetBook, TargetID: 404, UserID: 2, Body: "Great book"},
			wantErr: book.ErrBookReferenceNotFound,
		},
		{
			name:    "章节不存在",
			req:     appcomment.CreateCommentRequest{Target: comment.TargetChapter, TargetID: 404, UserID: 2, Body: "Great chapter"},
			wantErr: chapter.ErrChapterReferenceNotFound,
		},
		{
			name:    "用户不存在",
			req:     appcomment.CreateCommentRequest{Target: comment.TargetBook, TargetID: b.ID, UserID: 99, Body: "Great book"},
			wantErr: user.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(ctx, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 404, apperrors.GetAppError(err).HTTPStatus())
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, resp.ID)
			assert.Equal(t, int64(2), resp.UserID.Int64())
			require.NotNil(t, resp.User)
			assert.Equal(t, "bob", resp.User.Username)
		})
	}

	assert.Equal(t, int64(1), dbtest.Count(t, env.DB, &mysql.BookCommentModel{}))
	assert.Equal(t, int64(1), dbtest.Count(t, env.DB, &mysql.ChapterCommentModel{}))
}

func TestDeleteComment(t *testing.T) {
	ctx := context.Background()
	env := apptest.New(t)
	env.SeedUser(t, 1, "alice")
	b := env.SeedBook(t, 1, "Dune", true)
	bookComment := comment.NewComment(comment.TargetBook, b.ID, 1, "Great book")
	require.NoError(t, env.Comments.Create(ctx, bookComment))

	uc := appcomment.NewDeleteCommentUseCase(env.Comments)

	// 图书评论ID在章节评论表中不存在
	assert.ErrorIs(t, uc.Execute(ctx, comment.TargetChapter, bookComment.ID), comment.ErrCommentNotFound)

	require.NoError(t, uc.Execute(ctx, comment.TargetBook, bookComment.ID))
	assert.ErrorIs(t, uc.Execute(ctx, comment.TargetBook, bookComment.ID), comment.ErrCommentNotFound)
	assert.ErrorIs(t, uc.Execute(ctx, comment.TargetBook, 404), comment.ErrCommentNotFound)
}
