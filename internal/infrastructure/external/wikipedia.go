package external

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
)

const sourceWikipedia = "wikipedia"

// errMalformedQuery 响应中缺少query.pages
var errMalformedQuery = errors.New(`response has no "query.pages" object`)

// WikipediaClient 百科摘要
type WikipediaClient struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewWikipediaClient 创建Wikipedia客户端
// 注意:Wikipedia要求请求带有可识别的User-Agent
func NewWikipediaClient(cfg *config.Config, client *http.Client) *WikipediaClient {
	return &WikipediaClient{
		client:    client,
		baseURL:   strings.TrimRight(cfg.Author.WikipediaURL, "/"),
		userAgent: cfg.Author.UserAgent,
	}
}

// wikiPage query.pages中的一页
// 页面不存在时服务端返回 {"ns":0,"title":"...","missing":""},没有extract
type wikiPage struct {
	Title   string  `json:"title"`
	Extract *string `json:"extract"`
}

// ShortSummary 按标题精确查询页面的导语纯文本
func (c *WikipediaClient) ShortSummary(ctx context.Context, name string) (_ string, err error) {
	ctx, done := observe(ctx, sourceWikipedia, "wikipedia.extract")
	result := resultError
	defer func() { done(result, err) }()

	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("titles", name)
	params.Set("prop", "extracts")
	params.Set("exintro", "true")
	params.Set("explaintext", "true")
	endpoint := c.baseURL + "/w/api.php?" + params.Encode()

	var page *wikiPage
	decode := func(r io.Reader) error {
		p, err := firstPage(r)
		page = p
		return err
	}
	if err := getJSON(ctx, c.client, sourceWikipedia, c.userAgent, endpoint, decode); err != nil {
		return "", err
	}

	if page == nil || page.Extract == nil {
		result = resultNotFound
		return author.SummaryNotFound, nil
	}
	result = resultSuccess
	return *page.Extract, nil
}

// firstPage 流式解析,返回query.pages中按文档顺序的第一页
// pages是以页面ID为key的对象,map解码会丢失顺序,所以逐个token读取
// pages为空对象时返回(nil, nil)
func firstPage(r io.Reader) (*wikiPage, error) {
	dec := json.NewDecoder(r)
	if err := enterObject(dec); err != nil {
		return nil, err
	}

	if err := seekKey(dec, "query"); err != nil {
		return nil, err
	}
	if err := enterObject(dec); err != nil {
		return nil, err
	}
	if err := seekKey(dec, "pages"); err != nil {
		return nil, err
	}
	if err := enterObject(dec); err != nil {
		return nil, err
	}

	if !dec.More() {
		return nil, nil
	}
	// 页面ID(如 "12345" 或 "-1")
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	var page wikiPage
	if err := dec.Decode(&page); err != nil {
		return nil, err
	}
	return &page, nil
}

// enterObject 读取对象起始符 {
func enterObject(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	return nil
}

// seekKey 在当前对象中前进到指定key,跳过其他key的值
func seekKey(dec *json.Decoder, want string) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if key, _ := tok.(string); key == want {
			return nil
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return err
		}
	}
	return errMalformedQuery
}

var _ author.SummaryFetcher = (*WikipediaClient)(nil)
