package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/bookcatalog/internal/application/author"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// AuthorHandler 作者信息HTTP处理器
type AuthorHandler struct {
	getAuthorInfoUseCase *appauthor.GetAuthorInfoUseCase
}

// NewAuthorHandler 创建作者信息处理器
func NewAuthorHandler(getAuthorInfoUseCase *appauthor.GetAuthorInfoUseCase) *AuthorHandler {
	return &AuthorHandler{getAuthorInfoUseCase: getAuthorInfoUseCase}
}

// GetAuthorInfo 作者信息
// @Summary      作者信息
// @Description  并发查询Open Library(代表作)与Wikipedia(简介),两者都返回后合并
// @Tags         作者
// @Produce      json
// @Param        name query string true "作者姓名"
// @Success      200 {object} dto.AuthorInfoResponse
// @Failure      400 {object} response.ErrorBody "Author name not provided"
// @Failure      404 {object} response.ErrorBody "No information found for the specified author"
// @Failure      500 {object} response.ErrorBody
// @Router       /author [get]
func (h *AuthorHandler) GetAuthorInfo(c *gin.Context) {
	result, err := h.getAuthorInfoUseCase.Execute(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AuthorInfoResponse{
		AuthorName:    result.AuthorName,
		MostKnownWork: result.MostKnownWork,
		ShortSummary:  result.ShortSummary,
	})
}
