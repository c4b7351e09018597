// Package notify 把通知事件异步投递到外部通知服务
//
// 业务代码只调用Publish(非阻塞),由后台协程逐个投递:
//
//	用例(事务提交后) → Publish → 有界队列 → 投递协程 → 熔断器 → Sink(HTTP/MQ)
//
// 队列满时直接丢弃并计数;投递失败只记录日志,不重试
package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/bookhub/internal/domain/notification"
	"github.com/xiebiao/bookhub/pkg/circuitbreaker"
	"github.com/xiebiao/bookhub/pkg/logger"
	"github.com/xiebiao/bookhub/pkg/metrics"
	"github.com/xiebiao/bookhub/pkg/tracing"
)

// Sink 通知投递目标
type Sink interface {
	Name() string
	Send(ctx context.Context, event notification.Event) error
}

// Dispatcher 异步通知分发器,实现notification.Publisher
type Dispatcher struct {
	sink    Sink
	breaker *circuitbreaker.CircuitBreaker
	timeout time.Duration
	log     *zap.Logger

	mu      sync.RWMutex // 保护closed与events的关闭
	closed  bool
	started bool
	events  chan notification.Event
	done    chan struct{}
}

var _ notification.Publisher = (*Dispatcher)(nil)

// NewDispatcher 创建分发器
// queueSize是队列容量,timeout是单次投递超时
func NewDispatcher(sink Sink, queueSize int, timeout time.Duration) *Dispatcher {
	name := "notify-" + sink.Name()
	log := logger.Named("notify")

	breaker := circuitbreaker.NewCircuitBreaker(name, circuitbreaker.DefaultConfig())
	breaker.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
		log.Warn("通知熔断器状态变化",
			zap.String("breaker", name),
			zap.Stringer("from", from),
			zap.Stringer("to", to),
		)
		metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(to))
	})

	return &Dispatcher{
		sink:    sink,
		breaker: breaker,
		timeout: timeout,
		log:     log,
		events:  make(chan notification.Event, queueSize),
		done:    make(chan struct{}),
	}
}

// Start 启动投递协程,重复调用无效
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true
	go d.run()
}

// Publish 非阻塞入队,队列满或已关闭时丢弃
func (d *Dispatcher) Publish(event notification.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(event, "分发器已关闭")
		return
	}

	select {
	case d.events <- event:
		metrics.SetGauge(metrics.NotificationQueueLength, float64(len(d.events)))
	default:
		d.drop(event, "通知队列已满")
	}
}

func (d *Dispatcher) drop(event notification.Event, reason string) {
	metrics.IncCounterVec(metrics.NotificationsDroppedTotal, map[string]string{"kind": string(event.Kind)})
	d.log.Warn("通知被丢弃",
		zap.String("reason", reason),
		zap.String("kind", string(event.Kind)),
		zap.Int64("book_id", event.BookID),
	)
}

// Close 停止接收新事件,等待队列中的事件投递完
// ctx到期时返回ctx.Err(),剩余事件由投递协程继续处理直到进程退出
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.events)
	started := d.started
	d.mu.Unlock()

	if !started {
		return nil
	}

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for event := range d.events {
		metrics.SetGauge(metrics.NotificationQueueLength, float64(len(d.events)))
		d.deliver(event)
	}
}

func (d *Dispatcher) deliver(event notification.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	ctx, span := tracing.StartSpan(ctx, "notify.deliver")
	span.SetAttributes(
		attribute.String("notify.kind", string(event.Kind)),
		attribute.String("notify.sink", d.sink.Name()),
	)

	err := d.breaker.Execute(func() error {
		return d.sink.Send(ctx, event)
	})
	tracing.EndSpan(span, err)

	result := "success"
	switch {
	case errors.Is(err, circuitbreaker.ErrOpenState):
		result = "rejected"
		d.log.Warn("通知服务熔断中,跳过投递", zap.String("kind", string(event.Kind)))
	case err != nil:
		result = "failure"
		d.log.Error("通知投递失败",
			zap.String("kind", string(event.Kind)),
			zap.String("sink", d.sink.Name()),
			zap.Error(err),
		)
	}

	labels := map[string]string{"kind": string(event.Kind), "result": result}
	metrics.IncCounterVec(metrics.NotificationsTotal, labels)
	metrics.IncCounterVec(metrics.CircuitBreakerRequests, map[string]string{"name": d.breaker.Name(), "result": result})
}

// NopSink 不投递(notification.sink=none)
type NopSink struct{}

func (NopSink) Name() string { return "none" }

func (NopSink) Send(context.Context, notification.Event) error { return nil }
