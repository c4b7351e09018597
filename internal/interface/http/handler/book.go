package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookhub/internal/application/book"
	"github.com/xiebiao/bookhub/internal/application/view"
	"github.com/xiebiao/bookhub/internal/interface/http/dto"
	"github.com/xiebiao/bookhub/internal/interface/http/middleware"
	"github.com/xiebiao/bookhub/internal/interface/http/validation"
	"github.com/xiebiao/bookhub/pkg/idcodec"
	"github.com/xiebiao/bookhub/pkg/response"
)

// BookHandler 图书HTTP处理器
// Handler只负责HTTP相关的事情：解析请求、调用应用层、返回响应
type BookHandler struct {
	listPublished *appbook.ListPublishedBooksUseCase
	search        *appbook.SearchBooksUseCase
	create        *appbook.CreateBookUseCase
	get           *appbook.GetBookUseCase
	update        *appbook.UpdateBookUseCase
	publish       *appbook.PublishBookUseCase
	delete        *appbook.DeleteBookUseCase
	favorites     *appbook.ListFavoritesUseCase
	writing       *appbook.ListWritingUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listPublished *appbook.ListPublishedBooksUseCase,
	search *appbook.SearchBooksUseCase,
	create *appbook.CreateBookUseCase,
	get *appbook.GetBookUseCase,
	update *appbook.UpdateBookUseCase,
	publish *appbook.PublishBookUseCase,
	deleteBook *appbook.DeleteBookUseCase,
	favorites *appbook.ListFavoritesUseCase,
	writing *appbook.ListWritingUseCase,
) *BookHandler {
	return &BookHandler{
		listPublished: listPublished,
		search:        search,
		create:        create,
		get:           get,
		update:        update,
		publish:       publish,
		delete:        deleteBook,
		favorites:     favorites,
		writing:       writing,
	}
}

// ListPublished 已发布图书列表
// @Summary      已发布图书列表
// @Description  按创建时间倒序,每本书只带一个分类名(没有分类时为none)
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]view.BookListItem}
// @Router       /api/v1/books [get]
func (h *BookHandler) ListPublished(c *gin.Context) {
	items, err := h.listPublished.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}

// Search 搜索图书
// @Summary      搜索已发布图书
// @Description  标题或简介包含关键词;登录用户(或带userId)返回收藏状态
// @Tags         图书
// @Produce      json
// @Param        q      query string true  "关键词,至少2个字符"
// @Param        userId query string false "当前用户ID"
// @Success      200 {object} response.Response{data=[]view.SearchResult}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/books/search [get]
func (h *BookHandler) Search(c *gin.Context) {
	viewerID, err := middleware.ViewerID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	results, err := h.search.Execute(c.Request.Context(), c.Query("q"), viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, results)
}

// Create 创建图书
// @Summary      创建图书
// @Description  新书为未发布状态;newGenres按规范化名称创建或复用
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} response.Response{data=view.Book}
// @Failure      400 {object} response.Response "参数错误/分类不存在"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.create.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Title:       req.Title,
		Description: &req.Description,
		CoverImage:  req.CoverImage,
		AuthorID:    req.AuthorID.Int64(),
		GenreIDs:    idcodec.ToInt64s(req.GenreIDs),
		NewGenres:   req.NewGenres,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Get 图书详情
// @Summary      图书详情
// @Description  作者能看到未发布章节;isLiked表示当前用户是否点赞了章节
// @Tags         图书
// @Produce      json
// @Param        bookId path  string true "图书ID"
// @Param        userId query string false "当前用户ID(没有Token时必填)"
// @Success      200 {object} response.Response{data=view.BookWithChapters}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{bookId} [get]
func (h *BookHandler) Get(c *gin.Context) {
	bookID, ok := pathID(c, "bookId")
	if !ok {
		return
	}
	viewerID, err := middleware.ViewerID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if viewerID == 0 {
		response.Error(c, validation.Required("userId"))
		return
	}

	result, err := h.get.Execute(c.Request.Context(), bookID, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Update 更新图书
// @Summary      部分更新图书
// @Description  只修改请求中出现的字段;genreIds/newGenres解析后非空时整体替换分类
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        bookId  path string                true "图书ID"
// @Param        request body dto.UpdateBookRequest true "更新内容"
// @Success      200 {object} response.Response{data=view.Book}
// @Failure      400 {object} response.Response "参数错误/分类不存在"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{bookId} [patch]
func (h *BookHandler) Update(c *gin.Context) {
	bookID, ok := pathID(c, "bookId")
	if !ok {
		return
	}
	var req dto.UpdateBookRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.update.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		BookID:      bookID,
		Title:       req.Title,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		GenreIDs:    idcodec.ToInt64s(req.GenreIDs),
		NewGenres:   req.NewGenres,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Publish 发布/下架图书
// @Summary      设置图书发布状态
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        bookId  path string             true "图书ID"
// @Param        request body dto.PublishRequest true "发布状态"
// @Success      200 {object} response.Response{data=view.Book}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{bookId}/publish [patch]
func (h *BookHandler) Publish(c *gin.Context) {
	bookID, ok := pathID(c, "bookId")
	if !ok {
		return
	}
	var req dto.PublishRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.publish.Execute(c.Request.Context(), bookID, *req.Published)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Delete 删除图书
// @Summary      删除图书
// @Description  同时删除章节、段落、评论、点赞、收藏和分类关联
// @Tags         图书
// @Produce      json
// @Param        bookId path string true "图书ID"
// @Success      200 {object} response.Response{data=view.Deleted}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{bookId} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	bookID, ok := pathID(c, "bookId")
	if !ok {
		return
	}
	if err := h.delete.Execute(c.Request.Context(), bookID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view.Deleted{Success: true})
}

// Favorites 用户收藏的图书
// @Summary      用户收藏的图书
// @Tags         图书
// @Produce      json
// @Param        userId path string true "用户ID"
// @Success      200 {object} response.Response{data=[]view.Book}
// @Router       /api/v1/books/user/{userId}/favorites [get]
func (h *BookHandler) Favorites(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	books, err := h.favorites.Execute(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, books)
}

// Writing 用户创作的图书
// @Summary      用户创作的图书
// @Tags         图书
// @Produce      json
// @Param        userId path string true "用户ID"
// @Success      200 {object} response.Response{data=[]view.Book}
// @Router       /api/v1/books/user/{userId}/writing [get]
func (h *BookHandler) Writing(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	books, err := h.writing.Execute(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, books)
}
