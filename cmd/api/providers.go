package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/internal/application/event"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/pkg/mq"
)

// provideEventPublisher 目录变更事件的发布者
// mq.enabled=false时使用NopPublisher;启用后连接失败直接返回错误(启动失败)
func provideEventPublisher(cfg *config.Config, logger *zap.Logger) (event.Publisher, func(), error) {
	if !cfg.MQ.Enabled {
		return event.NopPublisher{}, func() {}, nil
	}

	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("连接RabbitMQ失败: %w", err)
	}

	cleanup := func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("关闭RabbitMQ发布者失败", zap.Error(err))
		}
	}
	return publisher, cleanup, nil
}

// provideEmitter 事件发布器,发布超时取mq.publish_timeout
func provideEmitter(cfg *config.Config, publisher event.Publisher, logger *zap.Logger) *event.Emitter {
	return event.NewEmitter(publisher, logger).WithTimeout(cfg.MQ.PublishTimeout)
}
