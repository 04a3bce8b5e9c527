package store

import (
	"context"
	"errors"
	"strings"

	"github.com/shoptalk-ai/shoptalk/internal/bot"
	"github.com/shoptalk-ai/shoptalk/internal/provision"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateTemplate is returned when inserting a template whose id
	// already exists.
	ErrDuplicateTemplate = errors.New("template id already exists")
)

// TemplateStoreIface exposes all persisted-template operations. The
// seeder and the CLIs never touch the DB directly; all access goes
// through this interface.
type TemplateStoreIface interface {
	GetByID(ctx context.Context, templateID string) (*bot.TemplateRecord, error)
	ListActive(ctx context.Context) ([]*bot.TemplateRecord, error)
	CountActive(ctx context.Context) (int, error)
	Insert(ctx context.Context, rec *bot.TemplateRecord) error
	Update(ctx context.Context, rec *bot.TemplateRecord) error
}

// BotStoreIface exposes the provisioned-bot operations the onboarding
// tooling and the conversation layer rely on.
type BotStoreIface interface {
	SaveBundle(ctx context.Context, b *provision.Bundle) error
	GetBotConfig(ctx context.Context, botID string) (*bot.Config, error)
	ListByClient(ctx context.Context, clientID string) ([]*bot.Config, error)
}

// isUniqueConstraintError checks whether err indicates a unique constraint violation.
// Works across SQLite, PostgreSQL, and MySQL.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || // SQLite & PostgreSQL
		strings.Contains(msg, "duplicate key") || // PostgreSQL
		strings.Contains(msg, "duplicate entry") // MySQL
}
