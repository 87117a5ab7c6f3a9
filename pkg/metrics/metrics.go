// Package metrics 基于Prometheus的指标收集
//
// 指标分三组：
//   - HTTP：请求总数、耗时分布、处理中的请求数（由middleware.Metrics记录）
//   - 业务：新增图书/评论数、作者信息外部查询的结果与耗时
//   - 消息：目录变更事件的发布结果
//
// 命名规范：Counter以_total结尾，Histogram以单位结尾（_seconds）。
// 标签只使用有限取值（method、route、status、source），不要用book_id这类高基数字段。
//
// 使用示例：
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	metrics.IncCounterVec(metrics.AuthorLookupsTotal, map[string]string{
//	    "source": "openlibrary",
//	    "result": "success",
//	})
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// once 防止重复注册到默认Registry（重复注册会panic）
	once sync.Once

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、route（gin路由模板，如/books/:id）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	// 标签：method、route
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// BooksCreatedTotal 新增图书数
	BooksCreatedTotal prometheus.Counter

	// ReviewsCreatedTotal 新增评论数
	ReviewsCreatedTotal prometheus.Counter

	// AuthorLookupsTotal 作者信息外部查询次数
	// 标签：source（openlibrary/wikipedia）、result（success/not_found/error）
	AuthorLookupsTotal *prometheus.CounterVec

	// AuthorLookupDuration 外部查询耗时
	// 标签：source
	AuthorLookupDuration *prometheus.HistogramVec

	// MessagesPublishedTotal 事件发布次数
	// 标签：routing_key、result（success/failure）
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 必须在程序启动时调用；多次调用是安全的
func InitMetrics() {
	once.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "route"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "Number of HTTP requests currently being served",
			},
		)

		BooksCreatedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "books_created_total",
				Help: "Total number of books added to the catalog",
			},
		)

		ReviewsCreatedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "reviews_created_total",
				Help: "Total number of reviews added",
			},
		)

		AuthorLookupsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "author_lookups_total",
				Help: "Outbound author lookups by source and result",
			},
			[]string{"source", "result"},
		)

		// 外部API耗时较长，桶上限放到10秒（与author.timeout默认值一致）
		AuthorLookupDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "author_lookup_duration_seconds",
				Help:    "Outbound author lookup latency in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"source"},
		)

		MessagesPublishedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "messages_published_total",
				Help: "Catalog events published to the message broker",
			},
			[]string{"routing_key", "result"},
		)
	})
}

// 以下便捷函数在指标未初始化时（如单元测试）直接忽略

// IncCounter 递增Counter
func IncCounter(counter prometheus.Counter) {
	if counter == nil {
		return
	}
	counter.Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	if counter == nil {
		return
	}
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Dec()
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogram == nil {
		return
	}
	histogram.With(labels).Observe(value)
}
