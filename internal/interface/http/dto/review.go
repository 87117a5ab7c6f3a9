package dto

// CreateReviewRequest HTTP新增评论请求
// 使用指针区分"未提供"与零值(review_score为0是合法分数)
type CreateReviewRequest struct {
	BookID      *uint    `json:"book_id" example:"1"`
	ReviewText  *string  `json:"review_text" example:"A masterpiece."`
	ReviewScore *float64 `json:"review_score" example:"4.5"`
}

// CreateReviewResponse HTTP新增评论响应
type CreateReviewResponse struct {
	Message  string `json:"message" example:"Review for Book with ID 1 added successfully"`
	ReviewID uint   `json:"review_id" example:"1"`
}

// ReviewResponse HTTP评论响应
// book_title为null表示评论指向的图书不存在
type ReviewResponse struct {
	ReviewID    uint    `json:"review_id" example:"1"`
	BookID      uint    `json:"book_id" example:"1"`
	BookTitle   *string `json:"book_title" example:"Dune"`
	ReviewText  string  `json:"review_text" example:"A masterpiece."`
	ReviewScore float64 `json:"review_score" example:"4.5"`
}

// ListReviewsResponse HTTP评论列表响应
type ListReviewsResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}
