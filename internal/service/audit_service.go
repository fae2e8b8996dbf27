package service

import (
	"context"
	"time"

	"catalog/internal/repository"
	"catalog/pkg/paginate"
)

// AuditLogResponse flattens an audit entry with its acting user for the API
type AuditLogResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Action     string `json:"action"`
	EntityID   string `json:"entity_id"`
	EntityName string `json:"entity_name"`
	Details    string `json:"details"`
	CreatedAt  string `json:"created_at"`
}

type AuditService interface {
	ListAuditLogs(ctx context.Context, page, limit int) ([]AuditLogResponse, paginate.Metadata, int64, error)
}

type auditService struct {
	repo repository.AuditRepository
}

// NewAuditService creates a new AuditService instance
func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

// ListAuditLogs retrieves one page of the audit trail with usernames joined in
func (s *auditService) ListAuditLogs(ctx context.Context, page, limit int) ([]AuditLogResponse, paginate.Metadata, int64, error) {
	entries, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, paginate.Metadata{}, 0, err
	}

	meta := paginate.Metadata{CurrentPage: page}
	if total > 0 {
		meta, err = paginate.BuildMetadata(page, limit, int(total))
		if err != nil {
			return nil, paginate.Metadata{}, 0, err
		}
	}

	res := make([]AuditLogResponse, 0, len(entries))
	for _, e := range entries {
		username := "System"
		userID := ""
		if e.User != nil {
			username = e.User.Username
		}
		if e.UserID != nil {
			userID = e.UserID.String()
		}

		res = append(res, AuditLogResponse{
			ID:         e.ID.String(),
			UserID:     userID,
			Username:   username,
			Action:     e.Action,
			EntityID:   e.EntityID,
			EntityName: e.EntityName,
			Details:    e.Details,
			CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		})
	}

	return res, meta, total, nil
}
