package services

import (
	"fintrack/internal/logger"
	"fintrack/internal/models"

	"gorm.io/gorm"
)

// AuditService records mutating operations. Failures are logged and
// swallowed so auditing never breaks the request that triggered it.
type AuditService struct {
	db *gorm.DB
}

// NewAuditService creates a new audit service
func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// Record writes an audit log entry.
func (s *AuditService) Record(userID uint, action, resourceType string, resourceID uint, ipAddress string) {
	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
	}
	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to write audit log",
			"user_id", userID,
			"action", action,
			"resource_type", resourceType,
			"error", err,
		)
	}
}
