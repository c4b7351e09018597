package handler

import (
	"github.com/gin-gonic/gin"

	appgenre "github.com/xiebiao/bookhub/internal/application/genre"
	"github.com/xiebiao/bookhub/internal/interface/http/dto"
	"github.com/xiebiao/bookhub/pkg/response"
)

// GenreHandler 分类HTTP处理器
type GenreHandler struct {
	usage  *appgenre.GetGenresByUsageUseCase
	create *appgenre.CreateGenresUseCase
}

// NewGenreHandler 创建分类处理器
func NewGenreHandler(usage *appgenre.GetGenresByUsageUseCase, create *appgenre.CreateGenresUseCase) *GenreHandler {
	return &GenreHandler{usage: usage, create: create}
}

// ByUsage 分类使用统计
// @Summary      按使用次数排序的分类
// @Description  percentage为该分类占全部分类关联的百分比;结果有短期缓存
// @Tags         分类
// @Produce      json
// @Success      200 {object} response.Response{data=[]view.GenreUsage}
// @Router       /api/v1/books/genres [get]
func (h *GenreHandler) ByUsage(c *gin.Context) {
	result, err := h.usage.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Create 批量创建分类
// @Summary      批量创建分类
// @Description  名称规范化(去空格、转小写)后去重,已存在的分类直接返回
// @Tags         分类
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateGenresRequest true "分类名称"
// @Success      201 {object} response.Response{data=[]view.Genre}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/books/genres [post]
func (h *GenreHandler) Create(c *gin.Context) {
	var req dto.CreateGenresRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.create.Execute(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}
