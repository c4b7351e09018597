package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/xiebiao/bookhub/internal/domain/notification"
)

// HTTPSink POST到通知服务
//   - book.created      → {baseURL}/notify/author
//   - chapter.published → {baseURL}/notify/book
type HTTPSink struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSink 创建HTTP投递目标
// Transport使用otelhttp,traceparent随请求传给通知服务
func NewHTTPSink(baseURL string, timeout time.Duration) *HTTPSink {
	return &HTTPSink{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (s *HTTPSink) Name() string { return "http" }

func (s *HTTPSink) Send(ctx context.Context, event notification.Event) error {
	path, err := notifyPath(event.Kind)
	if err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("序列化通知失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("创建通知请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("调用通知服务失败: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("通知服务返回状态码%d", resp.StatusCode)
	}
	return nil
}

func notifyPath(kind notification.Kind) (string, error) {
	switch kind {
	case notification.KindBookCreated:
		return "/notify/author", nil
	case notification.KindChapterPublished:
		return "/notify/book", nil
	default:
		return "", fmt.Errorf("未知的通知类型: %s", kind)
	}
}
