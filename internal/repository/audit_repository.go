// Package repository はデータアクセス層の実装を提供する。
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"potd-service/internal/domain"
)

// PotdAuditModel はgorm用のモデル定義。
type PotdAuditModel struct {
	ID        string    `gorm:"type:char(36);primaryKey"`
	Operation string    `gorm:"type:varchar(32);not null;index:idx_operation"`
	StartDate string    `gorm:"type:varchar(10)"`
	EndDate   string    `gorm:"type:varchar(10)"`
	Result    string    `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;precision:6;index:idx_created_at"`
}

// TableName はテーブル名を返す。
func (PotdAuditModel) TableName() string {
	return "potd_audit"
}

// BeforeCreate はレコード作成前にUUIDを生成する。
func (m *PotdAuditModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

// toDomain はモデルをドメインエンティティに変換する。
func (m *PotdAuditModel) toDomain() *domain.AuditEntry {
	return &domain.AuditEntry{
		ID:        m.ID,
		Operation: m.Operation,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Result:    domain.AuditResult(m.Result),
		CreatedAt: m.CreatedAt,
	}
}

// AuditRepository は監査レコードのデータアクセスを提供する。
type AuditRepository struct {
	db *gorm.DB
}

// NewAuditRepository は新しいAuditRepositoryを生成する。
func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create は監査レコードを保存する。
func (r *AuditRepository) Create(ctx context.Context, entry *domain.AuditEntry) error {
	model := &PotdAuditModel{
		ID:        entry.ID,
		Operation: entry.Operation,
		StartDate: entry.StartDate,
		EndDate:   entry.EndDate,
		Result:    string(entry.Result),
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	entry.ID = model.ID
	entry.CreatedAt = model.CreatedAt
	return nil
}

// FindRecent は新しい順に最大limit件の監査レコードを取得する。
func (r *AuditRepository) FindRecent(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	var models []PotdAuditModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.AuditEntry, len(models))
	for i := range models {
		entries[i] = models[i].toDomain()
	}
	return entries, nil
}
