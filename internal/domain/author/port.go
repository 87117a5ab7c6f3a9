package author

import (
	"context"
)

// WorkSearcher 图书目录检索(Open Library)
// 返回该作者的第一条检索结果标题;没有结果时返回(nil, nil)
type WorkSearcher interface {
	MostKnownWork(ctx context.Context, name string) (*string, error)
}

// SummaryFetcher 百科摘要(Wikipedia)
// 没有摘要时返回SummaryNotFound,不视为错误
type SummaryFetcher interface {
	ShortSummary(ctx context.Context, name string) (string, error)
}
