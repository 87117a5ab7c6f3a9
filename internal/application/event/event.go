// Package event 目录变更事件
//
// 写操作成功后由用例发布事件(book.created、book.updated、book.deleted、review.added)。
// 发布是尽力而为:失败只记录日志和指标,不影响HTTP响应。
// 发布在请求goroutine上同步进行,broker变慢时写请求最多多等待一个发布超时(mq.publish_timeout)。
package event

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// 路由键
const (
	BookCreated = "book.created"
	BookUpdated = "book.updated"
	BookDeleted = "book.deleted"
	ReviewAdded = "review.added"
)

// DefaultPublishTimeout 单次发布的默认超时时间
const DefaultPublishTimeout = 3 * time.Second

// Publisher 消息发布端口(*mq.Publisher实现该接口)
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// NopPublisher mq未启用时使用,丢弃所有事件
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, interface{}) error { return nil }

// Event 事件信封
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// BookPayload 图书事件内容
type BookPayload struct {
	BookID uint     `json:"book_id"`
	Title  string   `json:"title,omitempty"`
	Author string   `json:"author,omitempty"`
	Fields []string `json:"fields,omitempty"` // book.updated时被修改的字段
}

// ReviewPayload 评论事件内容
type ReviewPayload struct {
	ReviewID uint    `json:"review_id"`
	BookID   uint    `json:"book_id"`
	Score    float64 `json:"review_score"`
}

// Emitter 事件发布器
type Emitter struct {
	publisher Publisher
	logger    *zap.Logger
	timeout   time.Duration
}

// NewEmitter 创建事件发布器
func NewEmitter(publisher Publisher, logger *zap.Logger) *Emitter {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Emitter{publisher: publisher, logger: logger, timeout: DefaultPublishTimeout}
}

// WithTimeout 设置单次发布超时,<=0时保持默认值
func (e *Emitter) WithTimeout(d time.Duration) *Emitter {
	if d > 0 {
		e.timeout = d
	}
	return e
}

// Emit 发布事件
// 注意:请求context在响应写出后会被取消,这里脱离取消信号并单独设置超时
func (e *Emitter) Emit(ctx context.Context, routingKey string, payload interface{}) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)
	defer cancel()

	evt := Event{
		ID:         uuid.NewString(),
		Type:       routingKey,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}

	result := "success"
	if err := e.publisher.Publish(ctx, routingKey, evt); err != nil {
		result = "failure"
		e.logger.Warn("事件发布失败",
			zap.String("routing_key", routingKey),
			zap.String("event_id", evt.ID),
			zap.Error(err),
		)
	}
	metrics.IncCounterVec(metrics.MessagesPublishedTotal, map[string]string{
		"routing_key": routingKey,
		"result":      result,
	})
}
