// Package tracing 基于OpenTelemetry的链路追踪
//
// 用例层在每个操作入口创建Span,HTTP处理、数据库事务、通知投递都挂在同一条Trace下:
//
//	Trace: POST /api/v1/books/chapters/:chapterId/content
//	├─ Span: chapter.AppendContent
//	│  └─ 事务内:锁定章节 → 读最大序号 → 批量插入段落
//	└─ (异步) notify.deliver
//
// Span导出走OTLP gRPC(Jaeger/Tempo默认端口4317)
package tracing

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// TracerName 本服务Span的instrumentation名称
const TracerName = "github.com/xiebiao/bookhub"

// InitTracer 初始化全局TracerProvider,导出到OTLP gRPC端点
//
// 参数：
//   - serviceName: 服务名称（在Jaeger UI中显示）
//   - endpoint: OTLP gRPC地址,不带协议前缀（如localhost:4317）
//
// 返回的shutdown必须在退出前调用,否则会丢失最后一批Span
func InitTracer(serviceName, endpoint string) (func(context.Context) error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// grpc.Dial默认不阻塞,Collector不可用不会导致启动失败
	// 明文连接Collector（生产环境应启用TLS）
	conn, err := grpc.Dial(endpoint, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("连接OTLP Collector失败: %w", err)
	}

	exporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("创建OTLP exporter失败: %w", err)
	}

	shutdown, err := InitTracerWithExporter(serviceName, exporter)
	if err != nil {
		conn.Close()
		return nil, err
	}

	// WithGRPCConn时exporter不负责关闭连接
	return func(ctx context.Context) error {
		err := shutdown(ctx)
		if cerr := conn.Close(); err == nil {
			err = cerr
		}
		return err
	}, nil
}

// InitTracerWithExporter 使用指定的Exporter初始化(测试中传入内存Exporter)
func InitTracerWithExporter(serviceName string, exporter sdktrace.SpanExporter) (func(context.Context) error, error) {
	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("创建资源属性失败: %w", err)
	}

	// AlwaysSample: 开发环境100%采样
	// 生产环境建议 sdktrace.ParentBased(sdktrace.TraceIDRatioBased(0.01))
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return tp.Shutdown(ctx)
	}
	return shutdown, nil
}

// StartSpan 创建Span
// 未初始化TracerProvider时使用otel默认的no-op实现,调用方无需判断
func StartSpan(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, spanName, opts...)
}

// EndSpan 根据err设置状态并结束Span
//
//	ctx, span := tracing.StartSpan(ctx, "book.Create")
//	defer func() { tracing.EndSpan(span, err) }()
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// ExtractTraceID 从Context提取TraceID（用于关联日志）
func ExtractTraceID(ctx context.Context) string {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return ""
	}
	return sc.TraceID().String()
}

// ExtractSpanID 从Context提取SpanID
func ExtractSpanID(ctx context.Context) string {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return ""
	}
	return sc.SpanID().String()
}
