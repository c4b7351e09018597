package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/xiebiao/bookhub/internal/domain/notification"
	"github.com/xiebiao/bookhub/internal/infrastructure/config"
	"github.com/xiebiao/bookhub/pkg/logger"
	"github.com/xiebiao/bookhub/pkg/mq"
)

// NewSink 根据notification.sink选择投递目标
func NewSink(cfg *config.Config) (Sink, func(), error) {
	n := cfg.Notification
	switch n.Sink {
	case config.SinkHTTP:
		return NewHTTPSink(n.URL, n.Timeout), func() {}, nil
	case config.SinkMQ:
		p, err := mq.NewPublisher(n.AMQPURL, n.Exchange, n.ExchangeType)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := p.Close(); err != nil {
				logger.L().Warn("关闭MQ发布者失败", zap.Error(err))
			}
		}
		return NewMQSink(p), cleanup, nil
	case config.SinkNone, "":
		return NopSink{}, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("未知的通知方式: %s", n.Sink)
	}
}

// NewPublisher 创建并启动分发器
// cleanup在退出时排空队列,最多等待server.shutdown_timeout
func NewPublisher(cfg *config.Config, sink Sink) (notification.Publisher, func()) {
	d := NewDispatcher(sink, cfg.Notification.QueueSize, cfg.Notification.Timeout)
	d.Start()

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := d.Close(ctx); err != nil {
			logger.L().Warn("通知队列未能在超时前排空", zap.Error(err))
		}
	}
	return d, cleanup
}
