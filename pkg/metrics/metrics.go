// Package metrics 基于Prometheus的指标
//
// 指标分三类:
//   - HTTP: 请求数、耗时、并发数(由middleware.Metrics采集)
//   - 业务: 新书、章节发布、段落追加、分类统计缓存命中
//   - 通知: 投递结果、队列满丢弃、熔断器状态、MQ发布
//
// 命名规范:Counter以_total结尾,Histogram以单位结尾(_seconds)
//
// 使用示例:
//
//	metrics.InitMetrics()
//	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	metrics.IncCounterVec(metrics.NotificationsTotal, map[string]string{
//	    "kind":   "book.created",
//	    "result": "success",
//	})
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// once 防止重复注册(重复注册promauto会panic)
	once sync.Once

	// HTTPRequestsTotal HTTP请求总数
	// 标签:method、path(路由模板,如/api/v1/books/:bookId)、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// BooksCreatedTotal 新建图书总数
	BooksCreatedTotal prometheus.Counter

	// ChaptersPublishedTotal 章节发布总数(含重复发布)
	ChaptersPublishedTotal prometheus.Counter

	// ParagraphsAppendedTotal 追加的段落总数
	ParagraphsAppendedTotal prometheus.Counter

	// ParagraphAppendDuration 段落追加事务耗时(含等待章节行锁)
	ParagraphAppendDuration prometheus.Histogram

	// GenreUsageCacheTotal 分类统计缓存访问
	// 标签:result(hit/miss/error)
	GenreUsageCacheTotal *prometheus.CounterVec

	// NotificationsTotal 通知投递结果
	// 标签:kind(book.created/chapter.published)、result(success/failure/rejected)
	NotificationsTotal *prometheus.CounterVec

	// NotificationsDroppedTotal 队列已满被丢弃的通知
	NotificationsDroppedTotal *prometheus.CounterVec

	// NotificationQueueLength 通知队列当前长度
	NotificationQueueLength prometheus.Gauge

	// CircuitBreakerState 熔断器状态
	// 0=CLOSED, 1=OPEN, 2=HALF_OPEN
	CircuitBreakerState *prometheus.GaugeVec

	// CircuitBreakerRequests 熔断器请求总数
	// 标签:name、result(success/failure/rejected)
	CircuitBreakerRequests *prometheus.CounterVec

	// MessagesPublishedTotal MQ消息发布总数
	// 标签:exchange、routing_key
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 注册所有指标到默认Registry,可重复调用
func InitMetrics() {
	once.Do(register)
}

func register() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	BooksCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_created_total",
			Help: "新建图书总数",
		},
	)

	ChaptersPublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "chapters_published_total",
			Help: "章节发布总数",
		},
	)

	ParagraphsAppendedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "paragraphs_appended_total",
			Help: "追加的段落总数",
		},
	)

	ParagraphAppendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "paragraph_append_duration_seconds",
			Help: "段落追加耗时（秒）",
			// 同一章节的追加串行执行,排队时耗时会明显上升
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	GenreUsageCacheTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genre_usage_cache_total",
			Help: "分类统计缓存访问次数",
		},
		[]string{"result"},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "通知投递总数",
		},
		[]string{"kind", "result"},
	)

	NotificationsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_dropped_total",
			Help: "通知队列已满被丢弃的通知数",
		},
		[]string{"kind"},
	)

	NotificationQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notification_queue_length",
			Help: "通知队列当前长度",
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "熔断器请求总数",
		},
		[]string{"name", "result"},
	)

	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "消息发布总数",
		},
		[]string{"exchange", "routing_key"},
	)
}

// 未调用InitMetrics(metrics.enabled=false)时指标为nil,以下辅助函数都是空操作

// IncCounter 递增Counter
func IncCounter(counter prometheus.Counter) {
	if counter != nil {
		counter.Inc()
	}
}

// AddCounter Counter增加n
func AddCounter(counter prometheus.Counter, n int) {
	if counter != nil {
		counter.Add(float64(n))
	}
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	if counter != nil {
		counter.With(labels).Inc()
	}
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge != nil {
		gauge.Inc()
	}
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge != nil {
		gauge.Dec()
	}
}

// SetGauge 设置Gauge值
func SetGauge(gauge prometheus.Gauge, value float64) {
	if gauge != nil {
		gauge.Set(value)
	}
}

// SetGaugeVec 设置GaugeVec值（带标签）
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	if gauge != nil {
		gauge.With(labels).Set(value)
	}
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	if histogram != nil {
		histogram.Observe(value)
	}
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogram != nil {
		histogram.With(labels).Observe(value)
	}
}
