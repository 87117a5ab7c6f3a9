// Package external 作者信息聚合所依赖的外部API客户端
//
//   - OpenLibraryClient：图书目录检索（author.WorkSearcher）
//   - WikipediaClient：百科摘要（author.SummaryFetcher）
//
// 两者共用同一个带超时的http.Client，每次调用都会记录Span和Prometheus指标。
// 不重试、不熔断：任何传输错误或非2xx响应都直接返回给调用方。
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

const tracerName = "bookcatalog/external"

// lookup结果标签
const (
	resultSuccess  = "success"
	resultNotFound = "not_found"
	resultError    = "error"
)

// maxBodyBytes 外部响应体上限，防止异常响应占满内存
const maxBodyBytes = 4 << 20

// NewHTTPClient 创建外部API共用的http.Client
func NewHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Author.Timeout}
}

// StatusError 外部API返回非2xx
type StatusError struct {
	Source     string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned %d %s", e.Source, e.StatusCode, http.StatusText(e.StatusCode))
}

// getJSON 发起GET请求并把响应体交给decode处理
func getJSON(ctx context.Context, client *http.Client, source, userAgent, rawURL string, decode func(io.Reader) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", source, err)
	}
	req.Header.Set("Accept", "application/json")
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", source, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Source: source, StatusCode: resp.StatusCode}
	}

	if err := decode(io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", source, err)
	}
	return nil
}

// decodeJSON 常规的整体解码
func decodeJSON(v interface{}) func(io.Reader) error {
	return func(r io.Reader) error {
		return json.NewDecoder(r).Decode(v)
	}
}

// observe 开始一次外部调用的观测，返回结束函数
func observe(ctx context.Context, source, spanName string) (context.Context, func(result string, err error)) {
	ctx, span := tracing.StartSpan(ctx, tracerName, spanName, trace.WithSpanKind(trace.SpanKindClient))
	start := time.Now()

	return ctx, func(result string, err error) {
		defer span.End()

		metrics.ObserveHistogramVec(metrics.AuthorLookupDuration,
			map[string]string{"source": source}, time.Since(start).Seconds())
		metrics.IncCounterVec(metrics.AuthorLookupsTotal,
			map[string]string{"source": source, "result": result})

		span.SetAttributes(attribute.String("lookup.result", result))
		tracing.RecordError(span, err)
	}
}
