// eventlog 订阅目录变更事件并写入日志
//
// 需要在配置中开启mq(BOOKCATALOG_MQ_ENABLED=true),与cmd/api共用同一个exchange。
package main

import (
	"context"
	"encoding/json"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/internal/application/event"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/pkg/logger"
	"github.com/xiebiao/bookcatalog/pkg/mq"
)

// routingKeys 订阅全部图书与评论事件
var routingKeys = []string{"book.*", "review.*"}

func main() {
	// 1. 配置与日志
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if !cfg.MQ.Enabled {
		zl.Fatal("mq未启用,请设置mq.enabled=true")
	}

	// 2. 连接RabbitMQ并绑定队列
	consumer, err := mq.NewConsumer(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType, cfg.MQ.Queue, routingKeys, zl)
	if err != nil {
		zl.Fatal("创建消费者失败", zap.Error(err))
	}
	defer consumer.Close()

	// 3. 消费直到收到退出信号
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zl.Info("开始消费目录事件", zap.String("queue", cfg.MQ.Queue), zap.Strings("routing_keys", routingKeys))
	if err := consumer.Consume(ctx, logEvent(zl)); err != nil {
		zl.Fatal("消费中断", zap.Error(err))
	}
}

// logEvent 解析事件信封并记录
// 无法解析的消息只记录错误并确认,避免毒消息反复重新入队
func logEvent(zl *zap.Logger) mq.Handler {
	return func(routingKey string, body []byte) error {
		var evt event.Event
		if err := json.Unmarshal(body, &evt); err != nil {
			zl.Error("无法解析的事件", zap.String("routing_key", routingKey), zap.ByteString("body", body), zap.Error(err))
			return nil
		}

		zl.Info("catalog event",
			zap.String("routing_key", routingKey),
			zap.String("event_id", evt.ID),
			zap.String("type", evt.Type),
			zap.Time("occurred_at", evt.OccurredAt),
			zap.Any("payload", evt.Payload),
		)
		return nil
	}
}
