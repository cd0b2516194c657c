package auditlog

import (
	"context"

	"gorm.io/gorm"
)

// Repository defines persistence for audit log entries.
type Repository interface {
	Create(ctx context.Context, entry *AuditLog) error
	GetRecent(ctx context.Context, limit int) ([]AuditLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) GetRecent(ctx context.Context, limit int) ([]AuditLog, error) {
	var logs []AuditLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
