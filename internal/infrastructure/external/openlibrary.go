package external

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
)

const sourceOpenLibrary = "openlibrary"

// OpenLibraryClient 图书目录检索
type OpenLibraryClient struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewOpenLibraryClient 创建Open Library客户端
func NewOpenLibraryClient(cfg *config.Config, client *http.Client) *OpenLibraryClient {
	return &OpenLibraryClient{
		client:    client,
		baseURL:   strings.TrimRight(cfg.Author.OpenLibraryURL, "/"),
		userAgent: cfg.Author.UserAgent,
	}
}

// searchResponse /search.json的响应(只取用到的字段)
type searchResponse struct {
	Docs []struct {
		Title *string `json:"title"`
	} `json:"docs"`
}

// MostKnownWork 以第一条检索结果作为代表作
// docs缺失或为空返回nil;第一条没有title时返回"Unknown"
func (c *OpenLibraryClient) MostKnownWork(ctx context.Context, name string) (_ *string, err error) {
	ctx, done := observe(ctx, sourceOpenLibrary, "openlibrary.search")
	result := resultError
	defer func() { done(result, err) }()

	// 空格编码为"+"(QueryEscape的行为)
	endpoint := c.baseURL + "/search.json?author=" + url.QueryEscape(name)

	var resp searchResponse
	if err := getJSON(ctx, c.client, sourceOpenLibrary, c.userAgent, endpoint, decodeJSON(&resp)); err != nil {
		return nil, err
	}

	if len(resp.Docs) == 0 {
		result = resultNotFound
		return nil, nil
	}

	title := author.UnknownTitle
	if t := resp.Docs[0].Title; t != nil {
		title = *t
	}
	result = resultSuccess
	return &title, nil
}

var _ author.WorkSearcher = (*OpenLibraryClient)(nil)
