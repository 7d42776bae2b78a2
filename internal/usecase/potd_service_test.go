package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"potd-service/internal/domain"
)

// mockAuditRepository はテスト用のモックリポジトリ。
type mockAuditRepository struct {
	createErr        error
	findRecentResult []*domain.AuditEntry
	findRecentErr    error
	created          []*domain.AuditEntry
}

func (m *mockAuditRepository) Create(ctx context.Context, entry *domain.AuditEntry) error {
	if m.createErr != nil {
		return m.createErr
	}
	entry.ID = "test-id"
	entry.CreatedAt = time.Now()
	m.created = append(m.created, entry)
	return nil
}

func (m *mockAuditRepository) FindRecent(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	return m.findRecentResult, m.findRecentErr
}

func TestPotdService_Generate_Success(t *testing.T) {
	repo := &mockAuditRepository{}
	svc := NewPotdService(repo, "")

	password, err := svc.Generate(context.Background(), "2023-01-01", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if password != "Ynp4nSVi" {
		t.Errorf("want Ynp4nSVi, got %q", password)
	}

	if len(repo.created) != 1 {
		t.Fatalf("want 1 audit record, got %d", len(repo.created))
	}
	rec := repo.created[0]
	if rec.Operation != "GENERATE" || rec.StartDate != "2023-01-01" || rec.Result != domain.AuditResultSuccess {
		t.Errorf("unexpected audit record: %+v", rec)
	}
}

func TestPotdService_Generate_DefaultSeed(t *testing.T) {
	svc := NewPotdService(nil, "")

	password, err := svc.Generate(context.Background(), "2023-01-01", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 組み込み既定シードMPSJKMDHの固定ベクトル
	if password != "7MzW8NAP" {
		t.Errorf("want 7MzW8NAP, got %q", password)
	}
}

func TestPotdService_Generate_ConfiguredDefaultSeed(t *testing.T) {
	svc := NewPotdService(nil, "admin")

	password, err := svc.Generate(context.Background(), "2023-01-01", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if password != "Ynp4nSVi" {
		t.Errorf("want Ynp4nSVi, got %q", password)
	}
}

func TestPotdService_Generate_InvalidDate(t *testing.T) {
	repo := &mockAuditRepository{}
	svc := NewPotdService(repo, "")

	_, err := svc.Generate(context.Background(), "2023-02-30", "admin")
	if !errors.Is(err, domain.ErrInvalidDate) {
		t.Fatalf("want ErrInvalidDate, got %v", err)
	}

	if len(repo.created) != 1 {
		t.Fatalf("want 1 audit record, got %d", len(repo.created))
	}
	if repo.created[0].Result != domain.AuditResultFailed {
		t.Errorf("want FAILED audit record, got %s", repo.created[0].Result)
	}
}

func TestPotdService_Generate_AuditFailureIsNonFatal(t *testing.T) {
	repo := &mockAuditRepository{createErr: errors.New("db down")}
	svc := NewPotdService(repo, "")

	password, err := svc.Generate(context.Background(), "2023-01-01", "admin")
	if err != nil {
		t.Fatalf("audit failure must not fail generation: %v", err)
	}
	if password != "Ynp4nSVi" {
		t.Errorf("want Ynp4nSVi, got %q", password)
	}
}

func TestPotdService_GenerateRange_Success(t *testing.T) {
	repo := &mockAuditRepository{}
	svc := NewPotdService(repo, "")

	entries, err := svc.GenerateRange(context.Background(), "2023-01-01", "2023-01-03", "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("want 3 entries, got %d", len(entries))
	}

	rec := repo.created[0]
	if rec.Operation != "GENERATE_RANGE" || rec.StartDate != "2023-01-01" || rec.EndDate != "2023-01-03" {
		t.Errorf("unexpected audit record: %+v", rec)
	}
}

func TestPotdService_GenerateRange_InvalidRange(t *testing.T) {
	svc := NewPotdService(nil, "")

	_, err := svc.GenerateRange(context.Background(), "2023-01-03", "2023-01-01", "admin")
	if !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Errorf("want ErrInvalidDateRange, got %v", err)
	}
}

func TestPotdService_SeedToDES(t *testing.T) {
	repo := &mockAuditRepository{}
	svc := NewPotdService(repo, "")

	rendering, err := svc.SeedToDES(context.Background(), "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rendering != "61646d696e61646d" {
		t.Errorf("want 61646d696e61646d, got %q", rendering)
	}
	if repo.created[0].Operation != "SEED_TO_DES" {
		t.Errorf("unexpected audit record: %+v", repo.created[0])
	}
}

func TestPotdService_ListAudit_WithoutRepository(t *testing.T) {
	svc := NewPotdService(nil, "")

	entries, err := svc.ListAudit(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("want empty result, got %d entries", len(entries))
	}
}

func TestPotdService_ListAudit_WithRepository(t *testing.T) {
	repo := &mockAuditRepository{
		findRecentResult: []*domain.AuditEntry{
			{Operation: "GENERATE", Result: domain.AuditResultSuccess},
		},
	}
	svc := NewPotdService(repo, "")

	entries, err := svc.ListAudit(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("want 1 entry, got %d", len(entries))
	}
}
