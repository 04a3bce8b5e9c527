// Package seed copies the built-in template catalog into the template
// store. Seeding is idempotent: the first run inserts, every later run
// updates in place, and catalog edits propagate on boot. Orphaned rows
// (templates removed from the catalog after seeding) are never deleted;
// the persisted store stays the runtime source of truth.
package seed

import (
	"context"
	"errors"
	"strings"

	"github.com/shoptalk-ai/shoptalk/internal/bot"
	"github.com/shoptalk-ai/shoptalk/internal/catalog"
	"github.com/shoptalk-ai/shoptalk/internal/metrics"
	"github.com/shoptalk-ai/shoptalk/internal/store"
)

// Seed actions reported per catalog entry.
const (
	ActionInserted = "inserted"
	ActionUpdated  = "updated"
	ActionError    = "error"
)

// SeedResult reports what happened to one catalog entry.
type SeedResult struct {
	TemplateID string
	Action     string
	Err        string
}

// EnsureResult summarizes the boot-time seeding pass.
type EnsureResult struct {
	Skipped bool
	Seeded  int
	Updated int
	Errors  int
}

// Logger is the minimal structured-logging surface the seeder uses. A
// nil logger is valid and changes nothing but log output.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Seeder upserts the catalog into a template store.
type Seeder struct {
	store store.TemplateStoreIface
	log   Logger
}

func New(ts store.TemplateStoreIface, log Logger) *Seeder {
	return &Seeder{store: ts, log: log}
}

// PersistedTemplateID maps a catalog industry key to its persisted
// template id. The auto shop predates the naming convention and keeps
// its original id.
func PersistedTemplateID(industryKey string) string {
	if industryKey == "auto" {
		return "auto_shop_template"
	}
	return industryKey + "_template"
}

// SeedAll upserts every catalog entry sequentially, in catalog order, so
// logs stay deterministic and boot load stays bounded. A failing entry is
// recorded and the batch continues; SeedAll never returns an error.
func (s *Seeder) SeedAll(ctx context.Context, verbose bool) []SeedResult {
	entries := catalog.All()
	results := make([]SeedResult, 0, len(entries))

	for i, t := range entries {
		rec := Record(t, i)
		action, err := s.upsert(ctx, rec)
		if err != nil {
			metrics.TemplatesSeededTotal.WithLabelValues(ActionError).Inc()
			s.errorf("seed template %s: %v", rec.TemplateID, err)
			results = append(results, SeedResult{TemplateID: rec.TemplateID, Action: ActionError, Err: err.Error()})
			continue
		}
		metrics.TemplatesSeededTotal.WithLabelValues(action).Inc()
		if verbose {
			s.infof("seed template %s: %s", rec.TemplateID, action)
		}
		results = append(results, SeedResult{TemplateID: rec.TemplateID, Action: action})
	}
	return results
}

// EnsureSeeded is the boot path. When the store already holds at least as
// many active templates as the catalog, the pass is reported as skipped
// with zero seeded, but the update branch still runs on every entry so
// catalog edits reach the store. Failures are counted, never raised.
func (s *Seeder) EnsureSeeded(ctx context.Context) EnsureResult {
	expected := len(catalog.All())
	count, err := s.store.CountActive(ctx)
	if err != nil {
		s.warnf("count active templates: %v (seeding anyway)", err)
		count = 0
	}
	alreadySeeded := count >= expected

	results := s.SeedAll(ctx, false)

	var res EnsureResult
	res.Skipped = alreadySeeded
	for _, r := range results {
		switch r.Action {
		case ActionInserted:
			res.Seeded++
		case ActionUpdated:
			res.Updated++
		case ActionError:
			res.Errors++
		}
	}
	if alreadySeeded {
		res.Seeded = 0
	}
	return res
}

// upsert updates the row when it exists and inserts it otherwise.
func (s *Seeder) upsert(ctx context.Context, rec *bot.TemplateRecord) (string, error) {
	_, err := s.store.GetByID(ctx, rec.TemplateID)
	switch {
	case err == nil:
		if uerr := s.store.Update(ctx, rec); uerr != nil {
			return "", uerr
		}
		return ActionUpdated, nil
	case errors.Is(err, store.ErrNotFound):
		if ierr := s.store.Insert(ctx, rec); ierr != nil {
			return "", ierr
		}
		return ActionInserted, nil
	default:
		return "", err
	}
}

// Record composes the persisted record for one catalog entry. The
// persisted defaultConfig is a superset of the catalog defaults: rules
// and automations are filled in here.
func Record(t catalog.IndustryTemplate, displayOrder int) *bot.TemplateRecord {
	keywords := append([]string(nil), catalog.DefaultCrisisKeywords...)
	if isRecoveryVertical(t.Defaults.BusinessProfile.Type) {
		keywords = append(keywords, catalog.RecoveryCrisisKeywords...)
	}

	cfg := &bot.TemplateConfig{
		BusinessProfile: t.Defaults.BusinessProfile,
		SystemPrompt:    t.Defaults.SystemPromptIntro,
		FAQs:            t.Defaults.FAQs,
		Rules: bot.Rules{
			CrisisHandling: bot.CrisisHandling{Keywords: keywords},
		},
		Automations: bot.Automations{
			BookingCapture: bot.BookingCapture{
				Enabled:         true,
				Mode:            t.Booking.Mode,
				FailsafeEnabled: t.Booking.FailsafeEnabled,
			},
			LeadDetection: bot.LeadDetection{Enabled: true, Sensitivity: "medium"},
		},
		Theme:           t.Defaults.Theme,
		Personality:     t.Defaults.Personality,
		BookingProfile:  t.Booking,
		CTAButtons:      t.CTAButtons,
		Disclaimer:      t.Disclaimer,
		ServicesCatalog: t.Services,
	}

	return &bot.TemplateRecord{
		TemplateID:    PersistedTemplateID(t.ID),
		Name:          t.Name,
		Description:   t.Description,
		BotType:       t.BotType,
		Icon:          t.Icon,
		IsActive:      true,
		DisplayOrder:  displayOrder,
		DefaultConfig: cfg,
	}
}

func isRecoveryVertical(businessType string) bool {
	bt := strings.ToLower(businessType)
	for _, kw := range []string{"sober", "recovery", "rehab", "halfway"} {
		if strings.Contains(bt, kw) {
			return true
		}
	}
	return false
}

func (s *Seeder) infof(format string, args ...any) {
	if s.log != nil {
		s.log.Infof(format, args...)
	}
}

func (s *Seeder) warnf(format string, args ...any) {
	if s.log != nil {
		s.log.Warnf(format, args...)
	}
}

func (s *Seeder) errorf(format string, args ...any) {
	if s.log != nil {
		s.log.Errorf(format, args...)
	}
}
