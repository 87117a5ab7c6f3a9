package dto

// AuthorInfoResponse 作者信息
// most_known_work来自Open Library,short_summary来自Wikipedia(没有时为"Summary not found.")
type AuthorInfoResponse struct {
	AuthorName    string  `json:"author_name" example:"Jane Austen"`
	MostKnownWork *string `json:"most_known_work" example:"Pride and Prejudice"`
	ShortSummary  string  `json:"short_summary" example:"Jane Austen was an English novelist..."`
}

// PingResponse 健康检查响应
type PingResponse struct {
	Message string `json:"message" example:"pong"`
	Status  string `json:"status" example:"healthy"`
}
