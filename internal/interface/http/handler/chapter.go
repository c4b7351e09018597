package handler

import (
	"github.com/gin-gonic/gin"

	appchapter "github.com/xiebiao/bookhub/internal/application/chapter"
	"github.com/xiebiao/bookhub/internal/application/view"
	"github.com/xiebiao/bookhub/internal/interface/http/dto"
	"github.com/xiebiao/bookhub/pkg/response"
)

// ChapterHandler 章节HTTP处理器
type ChapterHandler struct {
	create  *appchapter.CreateChapterUseCase
	get     *appchapter.GetChapterUseCase
	append  *appchapter.AppendContentUseCase
	publish *appchapter.PublishChapterUseCase
	delete  *appchapter.DeleteChapterUseCase
}

// NewChapterHandler 创建章节处理器
func NewChapterHandler(
	create *appchapter.CreateChapterUseCase,
	get *appchapter.GetChapterUseCase,
	appendContent *appchapter.AppendContentUseCase,
	publish *appchapter.PublishChapterUseCase,
	deleteChapter *appchapter.DeleteChapterUseCase,
) *ChapterHandler {
	return &ChapterHandler{
		create:  create,
		get:     get,
		append:  appendContent,
		publish: publish,
		delete:  deleteChapter,
	}
}

// Create 创建章节
// @Summary      创建章节
// @Description  新章节为未发布状态
// @Tags         章节
// @Accept       json
// @Produce      json
// @Param        bookId  path string                   true "图书ID"
// @Param        request body dto.CreateChapterRequest true "章节标题"
// @Success      201 {object} response.Response{data=view.Chapter}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{bookId}/chapters [post]
func (h *ChapterHandler) Create(c *gin.Context) {
	bookID, ok := pathID(c, "bookId")
	if !ok {
		return
	}
	var req dto.CreateChapterRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.create.Execute(c.Request.Context(), bookID, req.Title)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Get 章节内容
// @Summary      章节内容
// @Description  段落按序号升序,评论按时间倒序
// @Tags         章节
// @Produce      json
// @Param        chapterId path string true "章节ID"
// @Success      200 {object} response.Response{data=view.ChapterWithContent}
// @Failure      404 {object} response.Response "章节不存在"
// @Router       /api/v1/books/chapters/{chapterId} [get]
func (h *ChapterHandler) Get(c *gin.Context) {
	chapterID, ok := pathID(c, "chapterId")
	if !ok {
		return
	}

	result, err := h.get.Execute(c.Request.Context(), chapterID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// AppendContent 追加段落
// @Summary      追加段落
// @Description  段落序号接在已有最大序号之后,同一章节的并发追加不会重号
// @Tags         章节
// @Accept       json
// @Produce      json
// @Param        chapterId path string                   true "章节ID"
// @Param        request   body dto.AppendContentRequest true "段落内容"
// @Success      201 {object} response.Response{data=[]view.Paragraph}
// @Failure      404 {object} response.Response "章节不存在"
// @Router       /api/v1/books/chapters/{chapterId}/content [post]
func (h *ChapterHandler) AppendContent(c *gin.Context) {
	chapterID, ok := pathID(c, "chapterId")
	if !ok {
		return
	}
	var req dto.AppendContentRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.append.Execute(c.Request.Context(), chapterID, req.Paragraphs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Publish 发布/下架章节
// @Summary      设置章节发布状态
// @Description  发布时异步通知关注该书的读者
// @Tags         章节
// @Accept       json
// @Produce      json
// @Param        chapterId path string             true "章节ID"
// @Param        request   body dto.PublishRequest true "发布状态"
// @Success      200 {object} response.Response{data=view.Chapter}
// @Failure      404 {object} response.Response "章节不存在"
// @Router       /api/v1/books/chapters/{chapterId}/publish [patch]
func (h *ChapterHandler) Publish(c *gin.Context) {
	chapterID, ok := pathID(c, "chapterId")
	if !ok {
		return
	}
	var req dto.PublishRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.publish.Execute(c.Request.Context(), chapterID, *req.Published)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Delete 删除章节
// @Summary      删除章节
// @Tags         章节
// @Produce      json
// @Param        chapterId path string true "章节ID"
// @Success      200 {object} response.Response{data=view.Deleted}
// @Failure      404 {object} response.Response "章节不存在"
// @Router       /api/v1/books/chapters/{chapterId} [delete]
func (h *ChapterHandler) Delete(c *gin.Context) {
	chapterID, ok := pathID(c, "chapterId")
	if !ok {
		return
	}
	if err := h.delete.Execute(c.Request.Context(), chapterID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view.Deleted{Success: true})
}
