package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	appreview "github.com/xiebiao/bookcatalog/internal/application/review"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// ReviewHandler 评论HTTP处理器
type ReviewHandler struct {
	addReviewUseCase       *appreview.AddReviewUseCase
	listReviewsUseCase     *appreview.ListReviewsUseCase
	listBookReviewsUseCase *appreview.ListBookReviewsUseCase
}

// NewReviewHandler 创建评论处理器
func NewReviewHandler(
	addReviewUseCase *appreview.AddReviewUseCase,
	listReviewsUseCase *appreview.ListReviewsUseCase,
	listBookReviewsUseCase *appreview.ListBookReviewsUseCase,
) *ReviewHandler {
	return &ReviewHandler{
		addReviewUseCase:       addReviewUseCase,
		listReviewsUseCase:     listReviewsUseCase,
		listBookReviewsUseCase: listBookReviewsUseCase,
	}
}

// AddReview 新增评论
// @Summary      新增评论
// @Description  book_id、review_text、review_score必填;不校验图书是否存在
// @Tags         评论
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateReviewRequest true "评论"
// @Success      201 {object} dto.CreateReviewResponse
// @Failure      400 {object} response.ErrorBody "book_id, review_text, and review_score are required"
// @Failure      500 {object} response.ErrorBody
// @Router       /reviews [post]
func (h *ReviewHandler) AddReview(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	result, err := h.addReviewUseCase.Execute(c.Request.Context(), appreview.AddReviewRequest{
		BookID: req.BookID,
		Text:   req.ReviewText,
		Score:  req.ReviewScore,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, dto.CreateReviewResponse{
		Message:  fmt.Sprintf("Review for Book with ID %d added successfully", result.BookID),
		ReviewID: result.ReviewID,
	})
}

// ListReviews 全部评论
// @Summary      全部评论
// @Tags         评论
// @Produce      json
// @Success      200 {object} dto.ListReviewsResponse
// @Failure      500 {object} response.ErrorBody
// @Router       /reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	result, err := h.listReviewsUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toListReviewsResponse(result))
}

// ListBookReviews 指定图书的评论
// @Summary      指定图书的评论
// @Tags         评论
// @Produce      json
// @Param        book_id path int true "图书ID"
// @Success      200 {object} dto.ListReviewsResponse
// @Failure      400 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody "Reviews for Book ID {id} not found"
// @Failure      500 {object} response.ErrorBody
// @Router       /reviews/{book_id} [get]
func (h *ReviewHandler) ListBookReviews(c *gin.Context) {
	bookID, err := parseID(c, "book_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.listBookReviewsUseCase.Execute(c.Request.Context(), bookID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toListReviewsResponse(result))
}

func toListReviewsResponse(result *appreview.ListReviewsResponse) dto.ListReviewsResponse {
	reviews := make([]dto.ReviewResponse, len(result.Reviews))
	for i, r := range result.Reviews {
		reviews[i] = dto.ReviewResponse{
			ReviewID:    r.ReviewID,
			BookID:      r.BookID,
			BookTitle:   r.BookTitle,
			ReviewText:  r.ReviewText,
			ReviewScore: r.ReviewScore,
		}
	}
	return dto.ListReviewsResponse{Reviews: reviews}
}
