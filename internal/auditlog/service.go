package auditlog

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
)

type Service interface {
	LogAction(ctx context.Context, recursoID *uint, action string, details map[string]interface{}, ip string, status string) error
	GetRecent(ctx context.Context, limit int) ([]AuditLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// LogAction creates a new audit log entry
func (s *service) LogAction(ctx context.Context, recursoID *uint, action string, details map[string]interface{}, ip string, status string) error {
	if details == nil {
		details = make(map[string]interface{})
	}

	detailsJSON, err := json.Marshal(details)
	if err != nil {
		detailsJSON = []byte("{}")
	}

	entry := &AuditLog{
		RecursoID: recursoID,
		Action:    action,
		Details:   datatypes.JSON(detailsJSON),
		IPAddress: ip,
		Status:    status,
	}

	return s.repo.Create(ctx, entry)
}

// GetRecent returns the latest entries, newest first.
func (s *service) GetRecent(ctx context.Context, limit int) ([]AuditLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.GetRecent(ctx, limit)
}
