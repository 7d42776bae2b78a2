// Package middleware はHTTP層の横断的な処理を提供する。
package middleware

import (
	"context"
	"log/slog"
	"time"
)

// WriteOperationLog は生成操作の構造化ログを出力する。
// パスワードとシードはログに含めない。
func WriteOperationLog(ctx context.Context, operation string, target string, result string) {
	slog.InfoContext(ctx, "potd operation completed",
		"operation", operation,
		"target", target,
		"result", result,
		"timestamp", time.Now().UTC().Format(time.RFC3339),
	)
}
