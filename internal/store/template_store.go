package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/shoptalk-ai/shoptalk/internal/bot"
)

// templateRow is the industry_templates table shape. The default config
// travels as a JSON text column and is decoded at the store boundary.
type templateRow struct {
	TemplateID    string    `db:"template_id"`
	Name          string    `db:"name"`
	Description   string    `db:"description"`
	BotType       string    `db:"bot_type"`
	Icon          string    `db:"icon"`
	DefaultConfig string    `db:"default_config"`
	IsActive      bool      `db:"is_active"`
	DisplayOrder  int       `db:"display_order"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// TemplateStore is the sqlx-backed implementation of TemplateStoreIface.
type TemplateStore struct {
	db *sqlx.DB
}

func NewTemplateStore(db *sqlx.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

// GetByID returns the template matching templateID, or ErrNotFound.
func (s *TemplateStore) GetByID(ctx context.Context, templateID string) (*bot.TemplateRecord, error) {
	var row templateRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM industry_templates WHERE template_id = ?`, templateID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.record(), nil
}

// ListActive returns all active templates in display order.
func (s *TemplateStore) ListActive(ctx context.Context) ([]*bot.TemplateRecord, error) {
	var rows []templateRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT * FROM industry_templates WHERE is_active = ? ORDER BY display_order ASC, template_id ASC
	`, true)
	if err != nil {
		return nil, err
	}
	recs := make([]*bot.TemplateRecord, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, row.record())
	}
	return recs, nil
}

// CountActive returns the number of active templates.
func (s *TemplateStore) CountActive(ctx context.Context) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM industry_templates WHERE is_active = ?`, true)
	return n, err
}

// Insert creates a new template row. Returns ErrDuplicateTemplate when
// the template id is already present.
func (s *TemplateStore) Insert(ctx context.Context, rec *bot.TemplateRecord) error {
	cfgJSON, err := marshalConfig(rec.DefaultConfig)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO industry_templates
			(template_id, name, description, bot_type, icon, default_config, is_active, display_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.TemplateID, rec.Name, rec.Description, rec.BotType, rec.Icon, cfgJSON, rec.IsActive, rec.DisplayOrder, now, now)
	if isUniqueConstraintError(err) {
		return ErrDuplicateTemplate
	}
	return err
}

// Update overwrites an existing template row, leaving display_order and
// created_at alone. Returns ErrNotFound when no row matches.
func (s *TemplateStore) Update(ctx context.Context, rec *bot.TemplateRecord) error {
	cfgJSON, err := marshalConfig(rec.DefaultConfig)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE industry_templates
		SET name = ?, description = ?, bot_type = ?, icon = ?, default_config = ?, is_active = ?, updated_at = ?
		WHERE template_id = ?
	`, rec.Name, rec.Description, rec.BotType, rec.Icon, cfgJSON, rec.IsActive, time.Now().UTC(), rec.TemplateID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalConfig(cfg *bot.TemplateConfig) (string, error) {
	if cfg == nil {
		return "", nil
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (r templateRow) record() *bot.TemplateRecord {
	rec := &bot.TemplateRecord{
		TemplateID:   r.TemplateID,
		Name:         r.Name,
		Description:  r.Description,
		BotType:      r.BotType,
		Icon:         r.Icon,
		IsActive:     r.IsActive,
		DisplayOrder: r.DisplayOrder,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.DefaultConfig != "" {
		var cfg bot.TemplateConfig
		// A decode failure leaves DefaultConfig nil; provisioning reports
		// it as INVALID_TEMPLATE_CONFIG rather than the store erroring.
		if err := json.Unmarshal([]byte(r.DefaultConfig), &cfg); err == nil {
			rec.DefaultConfig = &cfg
		}
	}
	return rec
}
