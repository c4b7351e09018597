package notify

import (
	"context"

	"github.com/xiebiao/bookhub/internal/domain/notification"
)

// publisher pkg/mq.Publisher的发布能力
type publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// MQSink 发布到RabbitMQ Exchange,routing key为事件类型
// 下游通知服务按book.*、chapter.*订阅
type MQSink struct {
	publisher publisher
}

// NewMQSink 创建MQ投递目标
func NewMQSink(p publisher) *MQSink {
	return &MQSink{publisher: p}
}

func (s *MQSink) Name() string { return "mq" }

func (s *MQSink) Send(ctx context.Context, event notification.Event) error {
	return s.publisher.Publish(ctx, string(event.Kind), event)
}
