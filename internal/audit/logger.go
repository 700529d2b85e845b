package audit

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/models"
)

// Logger writes events to the audit_logs table.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ev Event) error {
	log := models.AuditLog{
		Actor:    ev.Actor,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metadataJSON(ev.Metadata),
	}

	return l.db.Create(&log).Error
}

// LogrusSink records events as structured log lines. Used when no
// database is configured.
type LogrusSink struct {
	Logger *logrus.Logger
}

func (s LogrusSink) Log(ev Event) error {
	fields := logrus.Fields{
		"component": "audit",
		"actor":     ev.Actor,
		"entity":    ev.Entity,
	}
	if ev.EntityID != nil {
		fields["entity_id"] = *ev.EntityID
	}
	if meta := metadataJSON(ev.Metadata); meta != "" {
		fields["metadata"] = meta
	}
	s.Logger.WithFields(fields).Info(ev.Action)
	return nil
}

func metadataJSON(metadata any) string {
	if metadata == nil {
		return ""
	}
	b, err := json.Marshal(metadata)
	if err != nil {
		return ""
	}
	return string(b)
}
