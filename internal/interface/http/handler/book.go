package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	addBookUseCase    *appbook.AddBookUseCase
	listBooksUseCase  *appbook.ListBooksUseCase
	getBookUseCase    *appbook.GetBookUseCase
	updateBookUseCase *appbook.UpdateBookUseCase
	deleteBookUseCase *appbook.DeleteBookUseCase
	topBooksUseCase   *appbook.TopBooksUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	addBookUseCase *appbook.AddBookUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
	topBooksUseCase *appbook.TopBooksUseCase,
) *BookHandler {
	return &BookHandler{
		addBookUseCase:    addBookUseCase,
		listBooksUseCase:  listBooksUseCase,
		getBookUseCase:    getBookUseCase,
		updateBookUseCase: updateBookUseCase,
		deleteBookUseCase: deleteBookUseCase,
		topBooksUseCase:   topBooksUseCase,
	}
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  返回全部图书及平均评分,可按书名/作者/类型过滤(大小写不敏感的子串匹配)
// @Tags         图书
// @Produce      json
// @Param        title   query string false "书名"
// @Param        author  query string false "作者"
// @Param        genre   query string false "类型"
// @Success      200 {object} dto.ListBooksResponse
// @Failure      500 {object} response.ErrorBody
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var req dto.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	result, err := h.listBooksUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Title:  req.Title,
		Author: req.Author,
		Genre:  req.Genre,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	books := make([]dto.BookResponse, len(result.Books))
	for i, b := range result.Books {
		books[i] = toBookResponse(b)
	}
	response.OK(c, dto.ListBooksResponse{Books: books})
}

// AddBook 新增图书
// @Summary      新增图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} dto.CreateBookResponse
// @Failure      400 {object} response.ErrorBody "Title and Author are required"
// @Failure      500 {object} response.ErrorBody
// @Router       /books [post]
func (h *BookHandler) AddBook(c *gin.Context) {
	// 1. 参数绑定
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	// 2. 调用应用层用例
	result, err := h.addBookUseCase.Execute(c.Request.Context(), appbook.AddBookRequest{
		Title:   req.Title,
		Author:  req.Author,
		Summary: req.Summary,
		Genre:   req.Genre,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 构建HTTP响应
	response.JSON(c, http.StatusCreated, dto.CreateBookResponse{
		Message: "Book added successfully",
		BookID:  result.BookID,
	})
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody "Book with ID {id} not found"
// @Failure      500 {object} response.ErrorBody
// @Router       /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.getBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toBookResponse(*result))
}

// UpdateBook 更新图书
// @Summary      更新图书
// @Description  部分更新,只接受title/author/summary/genre字符串字段
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id      path int                   true "图书ID"
// @Param        request body dto.UpdateBookRequest true "需要修改的字段"
// @Success      201 {object} response.MessageBody
// @Failure      400 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody
// @Failure      500 {object} response.ErrorBody
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	// 请求体不合法时仍交给用例:图书不存在的404优先于400
	req := appbook.UpdateBookRequest{ID: id}
	if err := c.ShouldBindJSON(&req.Fields); err != nil {
		req.Fields = nil
		req.BodyErr = bindError(err)
	}

	if err := h.updateBookUseCase.Execute(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusCreated, fmt.Sprintf("Book with ID %d updated successfully", id))
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  同时删除该书的全部评论
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.MessageBody
// @Failure      400 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody
// @Failure      500 {object} response.ErrorBody
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.deleteBookUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, fmt.Sprintf("Book with ID %d deleted successfully", id))
}

// TopBooks 评分排行榜
// @Summary      评分最高的5本书
// @Description  只统计至少有一条评论的图书,按平均分降序
// @Tags         图书
// @Produce      json
// @Success      200 {object} dto.TopBooksResponse
// @Failure      404 {object} response.ErrorBody "There were no books"
// @Failure      500 {object} response.ErrorBody
// @Router       /books/top [get]
func (h *BookHandler) TopBooks(c *gin.Context) {
	result, err := h.topBooksUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	top := make([]dto.TopBookResponse, len(result.TopBooks))
	for i, t := range result.TopBooks {
		top[i] = dto.TopBookResponse{
			BookID:       t.BookID,
			BookTitle:    t.BookTitle,
			AverageScore: t.AverageScore,
		}
	}
	response.OK(c, dto.TopBooksResponse{TopBooks: top})
}

func toBookResponse(b appbook.BookView) dto.BookResponse {
	return dto.BookResponse{
		BookID:       b.BookID,
		Title:        b.Title,
		Author:       b.Author,
		Summary:      b.Summary,
		Genre:        b.Genre,
		AverageScore: b.AverageScore,
	}
}
