package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/shoptalk-ai/shoptalk/internal/bot"
	"github.com/shoptalk-ai/shoptalk/internal/provision"
)

// BotStore persists provisioning bundles and serves bot configurations
// to the conversation layer.
type BotStore struct {
	db *sqlx.DB
}

func NewBotStore(db *sqlx.DB) *BotStore {
	return &BotStore{db: db}
}

type botConfigRow struct {
	BotID     string    `db:"bot_id"`
	ClientID  string    `db:"client_id"`
	Config    string    `db:"config"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// SaveBundle writes a provisioning bundle in one transaction: the bot
// config plus the client settings, widget settings, booking profile, and
// FAQ seed rows. Re-saving a bundle for the same bot replaces all of its
// rows, which keeps onboarding retries safe.
func (s *BotStore) SaveBundle(ctx context.Context, b *provision.Bundle) error {
	cfgJSON, err := json.Marshal(b.Config)
	if err != nil {
		return err
	}
	providers := strings.Join(b.BookingProfile.ExternalProviders, ",")
	now := time.Now().UTC()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, del := range []struct {
		query string
		arg   string
	}{
		{`DELETE FROM bot_configs WHERE bot_id = ?`, b.Config.BotID},
		{`DELETE FROM client_settings WHERE client_id = ?`, b.Config.ClientID},
		{`DELETE FROM widget_settings WHERE bot_id = ?`, b.Config.BotID},
		{`DELETE FROM booking_profiles WHERE bot_id = ?`, b.Config.BotID},
		{`DELETE FROM bot_faqs WHERE bot_id = ?`, b.Config.BotID},
	} {
		if _, err := tx.ExecContext(ctx, del.query, del.arg); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO bot_configs (bot_id, client_id, config, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, b.Config.BotID, b.Config.ClientID, string(cfgJSON), now, now); err != nil {
		return err
	}

	cs := b.ClientSettings
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO client_settings (client_id, client_name, plan, timezone, behavior_preset, contact_phone, contact_email, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, cs.ClientID, cs.ClientName, cs.Plan, cs.Timezone, cs.BehaviorPreset, cs.ContactPhone, cs.ContactEmail, now, now); err != nil {
		return err
	}

	ws := b.WidgetSettings
	buttonsJSON, err := json.Marshal(ws.CTAButtons)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO widget_settings (id, bot_id, bot_name, primary_color, welcome_message, cta_buttons, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), ws.BotID, ws.BotName, ws.PrimaryColor, ws.WelcomeMessage, string(buttonsJSON), now); err != nil {
		return err
	}

	bp := b.BookingProfile
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO booking_profiles (bot_id, mode, primary_cta, secondary_cta, external_url, external_providers, failsafe_enabled, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, bp.BotID, string(bp.Mode), bp.PrimaryCTA, bp.SecondaryCTA, bp.ExternalURL, providers, bp.FailsafeEnabled, now); err != nil {
		return err
	}

	for i, f := range b.FAQs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO bot_faqs (id, bot_id, position, question, answer)
			VALUES (?, ?, ?, ?, ?)
		`, uuid.New().String(), b.Config.BotID, i, f.Question, f.Answer); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetBotConfig returns the configuration for botID, or ErrNotFound.
func (s *BotStore) GetBotConfig(ctx context.Context, botID string) (*bot.Config, error) {
	var row botConfigRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM bot_configs WHERE bot_id = ?`, botID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.config()
}

// ListByClient returns every bot configuration owned by clientID.
func (s *BotStore) ListByClient(ctx context.Context, clientID string) ([]*bot.Config, error) {
	var rows []botConfigRow
	err := s.db.SelectContext(ctx, &rows, `SELECT * FROM bot_configs WHERE client_id = ? ORDER BY bot_id ASC`, clientID)
	if err != nil {
		return nil, err
	}
	cfgs := make([]*bot.Config, 0, len(rows))
	for _, row := range rows {
		cfg, err := row.config()
		if err != nil {
			return nil, err
		}
		cfgs = append(cfgs, cfg)
	}
	return cfgs, nil
}

func (r botConfigRow) config() (*bot.Config, error) {
	var cfg bot.Config
	if err := json.Unmarshal([]byte(r.Config), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
