package handler

import (
	"github.com/gin-gonic/gin"

	appcomment "github.com/xiebiao/bookhub/internal/application/comment"
	"github.com/xiebiao/bookhub/internal/application/view"
	"github.com/xiebiao/bookhub/internal/domain/comment"
	"github.com/xiebiao/bookhub/internal/interface/http/dto"
	"github.com/xiebiao/bookhub/pkg/response"
)

// CommentHandler 评论HTTP处理器
// 图书评论和章节评论共用一套用例,按路由区分评论对象
type CommentHandler struct {
	create *appcomment.CreateCommentUseCase
	delete *appcomment.DeleteCommentUseCase
}

// NewCommentHandler 创建评论处理器
func NewCommentHandler(create *appcomment.CreateCommentUseCase, deleteComment *appcomment.DeleteCommentUseCase) *CommentHandler {
	return &CommentHandler{create: create, delete: deleteComment}
}

// CreateBookComment 评论图书
// @Summary      评论图书
// @Tags         评论
// @Accept       json
// @Produce      json
// @Param        bookId  path string                   true "图书ID"
// @Param        request body dto.CreateCommentRequest true "评论内容"
// @Success      201 {object} response.Response{data=view.Comment}
// @Failure      404 {object} response.Response "图书或用户不存在"
// @Router       /api/v1/books/{bookId}/comments [post]
func (h *CommentHandler) CreateBookComment(c *gin.Context) {
	h.createComment(c, comment.TargetBook, "bookId")
}

// CreateChapterComment 评论章节
// @Summary      评论章节
// @Tags         评论
// @Accept       json
// @Produce      json
// @Param        chapterId path string                   true "章节ID"
// @Param        request   body dto.CreateCommentRequest true "评论内容"
// @Success      201 {object} response.Response{data=view.Comment}
// @Failure      404 {object} response.Response "章节或用户不存在"
// @Router       /api/v1/books/chapters/{chapterId}/comments [post]
func (h *CommentHandler) CreateChapterComment(c *gin.Context) {
	h.createComment(c, comment.TargetChapter, "chapterId")
}

func (h *CommentHandler) createComment(c *gin.Context, target comment.Target, param string) {
	targetID, ok := pathID(c, param)
	if !ok {
		return
	}
	var req dto.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.create.Execute(c.Request.Context(), appcomment.CreateCommentRequest{
		Target:   target,
		TargetID: targetID,
		UserID:   req.UserID.Int64(),
		Body:     req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// DeleteBookComment 删除图书评论
// @Summary      删除图书评论
// @Tags         评论
// @Produce      json
// @Param        commentId path string true "评论ID"
// @Success      200 {object} response.Response{data=view.Deleted}
// @Failure      404 {object} response.Response "评论不存在"
// @Router       /api/v1/books/comments/{commentId} [delete]
func (h *CommentHandler) DeleteBookComment(c *gin.Context) {
	h.deleteComment(c, comment.TargetBook)
}

// DeleteChapterComment 删除章节评论
// @Summary      删除章节评论
// @Tags         评论
// @Produce      json
// @Param        commentId path string true "评论ID"
// @Success      200 {object} response.Response{data=view.Deleted}
// @Failure      404 {object} response.Response "评论不存在"
// @Router       /api/v1/books/chapter-comments/{commentId} [delete]
func (h *CommentHandler) DeleteChapterComment(c *gin.Context) {
	h.deleteComment(c, comment.TargetChapter)
}

func (h *CommentHandler) deleteComment(c *gin.Context, target comment.Target) {
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	if err := h.delete.Execute(c.Request.Context(), target, commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view.Deleted{Success: true})
}
