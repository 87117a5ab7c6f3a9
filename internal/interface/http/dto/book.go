package dto

// CreateBookRequest HTTP新增图书请求
// title/author的必填校验在领域层完成,以便返回统一的错误消息
type CreateBookRequest struct {
	Title   string `json:"title" example:"Dune"`
	Author  string `json:"author" example:"Frank Herbert"`
	Summary string `json:"summary" example:"A desert planet and its spice."`
	Genre   string `json:"genre" example:"Science Fiction"`
}

// CreateBookResponse HTTP新增图书响应
type CreateBookResponse struct {
	Message string `json:"message" example:"Book added successfully"`
	BookID  uint   `json:"book_id" example:"1"`
}

// UpdateBookRequest HTTP更新图书请求(文档用)
// 实际绑定为map[string]interface{},只接受下列字段,均为可选
type UpdateBookRequest struct {
	Title   string `json:"title,omitempty" example:"Dune Messiah"`
	Author  string `json:"author,omitempty" example:"Frank Herbert"`
	Summary string `json:"summary,omitempty" example:"The sequel."`
	Genre   string `json:"genre,omitempty" example:"Science Fiction"`
}

// BookResponse HTTP图书响应
// average_score为该书全部评论的平均分,没有评论时为null
type BookResponse struct {
	BookID       uint     `json:"book_id" example:"1"`
	Title        string   `json:"title" example:"Dune"`
	Author       string   `json:"author" example:"Frank Herbert"`
	Summary      string   `json:"summary" example:"A desert planet and its spice."`
	Genre        string   `json:"genre" example:"Science Fiction"`
	AverageScore *float64 `json:"average_score" example:"4.5"`
}

// ListBooksRequest HTTP图书列表过滤条件(可选,大小写不敏感的子串匹配)
type ListBooksRequest struct {
	Title  string `form:"title" example:"dune"`
	Author string `form:"author" example:"herbert"`
	Genre  string `form:"genre" example:"fiction"`
}

// ListBooksResponse HTTP图书列表响应
type ListBooksResponse struct {
	Books []BookResponse `json:"books"`
}

// TopBookResponse 排行榜条目
type TopBookResponse struct {
	BookID       uint    `json:"book_id" example:"1"`
	BookTitle    string  `json:"book_title" example:"Dune"`
	AverageScore float64 `json:"average_score" example:"4.5"`
}

// TopBooksResponse 平均分最高的至多5本书
type TopBooksResponse struct {
	TopBooks []TopBookResponse `json:"top_5_books"`
}
