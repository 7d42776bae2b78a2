// Package usecase はアプリケーションのユースケースを実装する。
package usecase

import (
	"context"
	"log/slog"

	"potd-service/internal/domain"
	"potd-service/internal/potd"
)

// AuditRepository は監査レコードのデータアクセスインターフェース。
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
	FindRecent(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}

// PotdService はpassword of the day生成に関するユースケースを提供する。
// 生成そのものは純粋関数であり、本サービスは既定シードの解決と
// 監査記録の付与のみを担う。
type PotdService struct {
	auditRepo   AuditRepository // nilの場合は監査記録を行わない
	defaultSeed string
}

// NewPotdService は新しいPotdServiceを生成する。
// defaultSeedが空の場合はエンジン組み込みの既定シードを使う。
func NewPotdService(auditRepo AuditRepository, defaultSeed string) *PotdService {
	if defaultSeed == "" {
		defaultSeed = potd.DefaultSeed
	}
	return &PotdService{
		auditRepo:   auditRepo,
		defaultSeed: defaultSeed,
	}
}

func (s *PotdService) resolveSeed(seed string) string {
	if seed == "" {
		return s.defaultSeed
	}
	return seed
}

// writeAudit は操作の監査レコードを記録する。パスワードとシードは
// 記録しない。書き込み失敗はログに残すのみで呼び出しは失敗させない。
func (s *PotdService) writeAudit(ctx context.Context, operation, startDate, endDate string, opErr error) {
	if s.auditRepo == nil {
		return
	}
	result := domain.AuditResultSuccess
	if opErr != nil {
		result = domain.AuditResultFailed
	}
	entry := &domain.AuditEntry{
		Operation: operation,
		StartDate: startDate,
		EndDate:   endDate,
		Result:    result,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		slog.WarnContext(ctx, "failed to write audit record",
			"operation", operation, "error", err)
	}
}

// Generate は1日分のパスワードを生成する。
func (s *PotdService) Generate(ctx context.Context, dateStr, seed string) (string, error) {
	password, err := potd.Generate(dateStr, s.resolveSeed(seed))
	s.writeAudit(ctx, "GENERATE", dateStr, "", err)
	return password, err
}

// GenerateRange は[start, end]の各日のパスワードを時系列順に生成する。
func (s *PotdService) GenerateRange(ctx context.Context, startStr, endStr, seed string) ([]domain.PasswordEntry, error) {
	entries, err := potd.GenerateRange(startStr, endStr, s.resolveSeed(seed))
	s.writeAudit(ctx, "GENERATE_RANGE", startStr, endStr, err)
	return entries, err
}

// SeedToDES はシードから導出した鍵の16進表現を返す（診断用）。
func (s *PotdService) SeedToDES(ctx context.Context, seed string) (string, error) {
	rendering, err := potd.SeedToDES(s.resolveSeed(seed))
	s.writeAudit(ctx, "SEED_TO_DES", "", "", err)
	return rendering, err
}

// ListAudit は直近の監査レコードを取得する。監査が無効な構成では空を返す。
func (s *PotdService) ListAudit(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	if s.auditRepo == nil {
		return []*domain.AuditEntry{}, nil
	}
	return s.auditRepo.FindRecent(ctx, limit)
}
