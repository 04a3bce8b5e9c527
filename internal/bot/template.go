package bot

import "time"

// TemplateRecord is a persisted industry template as the rest of the
// system sees it: identity columns plus the decoded defaultConfig. The
// store marshals DefaultConfig into a JSON text column; everything above
// the store works with the decoded form.
//
// After seeding, these records are the runtime source of truth. The
// in-code catalog is only consulted by the seeder.
type TemplateRecord struct {
	TemplateID   string
	Name         string
	Description  string
	BotType      string
	Icon         string
	IsActive     bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DefaultConfig is nil when the persisted JSON is absent or failed to
	// decode. Provisioning treats nil as a malformed template.
	DefaultConfig *TemplateConfig
}
