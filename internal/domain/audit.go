package domain

import "time"

// AuditResult は監査レコードの操作結果を表す。
type AuditResult string

const (
	// AuditResultSuccess は操作成功を表す。
	AuditResultSuccess AuditResult = "SUCCESS"
	// AuditResultFailed は操作失敗を表す。
	AuditResultFailed AuditResult = "FAILED"
)

// AuditEntry は生成操作の監査レコードを表す。
// パスワードおよびシードそのものは一切含めない。
type AuditEntry struct {
	ID        string
	Operation string
	StartDate string
	EndDate   string
	Result    AuditResult
	CreatedAt time.Time
}
