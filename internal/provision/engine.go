// Package provision turns a persisted industry template plus tenant
// overrides into a provisioning bundle: the bot configuration and the
// seed objects an external writer persists alongside it. Everything in
// this package is pure and synchronous; failures come back as values.
package provision

import (
	"regexp"
	"strings"

	"github.com/shoptalk-ai/shoptalk/internal/bot"
)

// DefaultBehaviorPreset is used whenever overrides omit a preset. A bot
// never runs with "no preset".
const DefaultBehaviorPreset = "support_lead_focused"

// leadSensitivityByPreset maps each behavior preset to the lead-detection
// sensitivity the conversation layer runs with.
var leadSensitivityByPreset = map[string]string{
	"support_lead_focused": "medium",
	"sales_focused_soft":   "high",
	"support_only":         "low",
	"compliance_strict":    "low",
	"sales_heavy":          "high",
}

// Contact is the tenant's preferred contact coordinates, merged into the
// business profile after any profile overrides.
type Contact struct {
	Phone string
	Email string
}

// Overrides is everything a tenant supplies at onboarding. ClientID and
// ClientName are required; ClientName is authoritative for the business
// name no matter what the profile override says.
type Overrides struct {
	ClientID           string
	ClientName         string
	BotID              string
	BusinessProfile    *bot.BusinessProfile
	CustomFAQs         []bot.FAQ
	Contact            Contact
	Plan               string
	ExternalBookingURL string
	BehaviorPreset     string
	Timezone           string
}

// ClientSettingsSeed seeds the per-client settings row.
type ClientSettingsSeed struct {
	ClientID       string
	ClientName     string
	Plan           string
	Timezone       string
	BehaviorPreset string
	ContactPhone   string
	ContactEmail   string
}

// WidgetSettingsSeed seeds the chat widget row from the template theme
// and CTA buttons.
type WidgetSettingsSeed struct {
	BotID          string
	BotName        string
	PrimaryColor   string
	WelcomeMessage string
	CTAButtons     []bot.CTAButton
}

// BookingProfileSeed seeds the booking profile row for the new bot.
type BookingProfileSeed struct {
	BotID             string
	Mode              bot.BookingMode
	PrimaryCTA        string
	SecondaryCTA      string
	ExternalURL       string
	ExternalProviders []string
	FailsafeEnabled   bool
}

// Bundle is the full provisioning output: the bot configuration plus the
// four seed objects. The engine never persists anything itself.
type Bundle struct {
	Config         *bot.Config
	ClientSettings ClientSettingsSeed
	WidgetSettings WidgetSettingsSeed
	BookingProfile BookingProfileSeed
	FAQs           []bot.FAQ
}

// BuildClientFromTemplate builds the provisioning bundle for one tenant
// from a persisted template record. Validation failures are returned as
// *ValidationError values; the first failure wins and the order is fixed:
// template present, clientId, clientName, template config present.
func BuildClientFromTemplate(rec *bot.TemplateRecord, ov Overrides) (*Bundle, error) {
	if rec == nil {
		return nil, &ValidationError{Code: CodeMissingTemplate, Message: "template not found"}
	}
	if strings.TrimSpace(ov.ClientID) == "" {
		return nil, missingField("clientId")
	}
	if strings.TrimSpace(ov.ClientName) == "" {
		return nil, missingField("clientName")
	}
	if rec.DefaultConfig == nil {
		return nil, &ValidationError{
			Code:    CodeInvalidTemplateConfig,
			Field:   "defaultConfig",
			Message: "template has no default configuration",
		}
	}
	tc := rec.DefaultConfig

	botID := ov.BotID
	if botID == "" {
		botID = ov.ClientID + "_main"
	}

	profile := mergeBusinessProfile(tc.BusinessProfile, ov)
	faqs := MergeFAQs(tc.FAQs, ov.CustomFAQs)

	preset := ov.BehaviorPreset
	if preset == "" {
		preset = DefaultBehaviorPreset
	}
	sensitivity, ok := leadSensitivityByPreset[preset]
	if !ok {
		sensitivity = leadSensitivityByPreset[DefaultBehaviorPreset]
	}

	mode := tc.BookingProfile.Mode
	if mode == "" {
		mode = bot.BookingInternal
	}
	if ov.ExternalBookingURL != "" {
		mode = bot.BookingExternal
	}

	automations := tc.Automations
	// bookingCapture is always on; a template cannot opt a client out of
	// the booking failsafe.
	automations.BookingCapture = bot.BookingCapture{
		Enabled:         true,
		Mode:            mode,
		ExternalURL:     ov.ExternalBookingURL,
		FailsafeEnabled: true,
	}
	automations.LeadDetection = bot.LeadDetection{Enabled: true, Sensitivity: sensitivity}

	cfg := &bot.Config{
		ClientID:           ov.ClientID,
		BotID:              botID,
		Name:               ov.ClientName + " Assistant",
		Description:        rec.Description,
		BotType:            rec.BotType,
		BusinessProfile:    profile,
		Rules:              tc.Rules,
		SystemPrompt:       tc.SystemPrompt,
		FAQs:               faqs,
		Automations:        automations,
		Personality:        tc.Personality,
		QuickActions:       tc.CTAButtons,
		ExternalBookingURL: ov.ExternalBookingURL,
		Metadata: bot.Metadata{
			ClonedFrom:       rec.TemplateID,
			IndustryTemplate: rec.TemplateID,
			IsDemo:           false,
			OnboardingStatus: "draft",
			BehaviorPreset:   preset,
			Plan:             ov.Plan,
		},
	}

	return &Bundle{
		Config: cfg,
		ClientSettings: ClientSettingsSeed{
			ClientID:       ov.ClientID,
			ClientName:     ov.ClientName,
			Plan:           ov.Plan,
			Timezone:       profile.Timezone,
			BehaviorPreset: preset,
			ContactPhone:   profile.Phone,
			ContactEmail:   profile.Email,
		},
		WidgetSettings: WidgetSettingsSeed{
			BotID:          botID,
			BotName:        cfg.Name,
			PrimaryColor:   tc.Theme.PrimaryColor,
			WelcomeMessage: tc.Theme.WelcomeMessage,
			CTAButtons:     tc.CTAButtons,
		},
		BookingProfile: BookingProfileSeed{
			BotID:             botID,
			Mode:              mode,
			PrimaryCTA:        tc.BookingProfile.PrimaryCTA,
			SecondaryCTA:      tc.BookingProfile.SecondaryCTA,
			ExternalURL:       ov.ExternalBookingURL,
			ExternalProviders: tc.BookingProfile.ExternalProviders,
			// Strictly the template's policy. Seeds must not invent a
			// failsafe setting the template never declared.
			FailsafeEnabled: tc.BookingProfile.FailsafeEnabled,
		},
		FAQs: faqs,
	}, nil
}

// mergeBusinessProfile layers overrides on the template profile field by
// field, then contact coordinates, then re-asserts the business name.
// The final assignment is deliberate: no earlier merge step, in any
// order, may leave a businessName other than the client's name.
func mergeBusinessProfile(base bot.BusinessProfile, ov Overrides) bot.BusinessProfile {
	p := base
	if o := ov.BusinessProfile; o != nil {
		if o.BusinessName != "" {
			p.BusinessName = o.BusinessName
		}
		if o.Type != "" {
			p.Type = o.Type
		}
		if o.Description != "" {
			p.Description = o.Description
		}
		if o.Address != "" {
			p.Address = o.Address
		}
		if o.Phone != "" {
			p.Phone = o.Phone
		}
		if o.Email != "" {
			p.Email = o.Email
		}
		if o.Website != "" {
			p.Website = o.Website
		}
		if o.Hours != "" {
			p.Hours = o.Hours
		}
		if len(o.Services) > 0 {
			p.Services = o.Services
		}
		if o.Timezone != "" {
			p.Timezone = o.Timezone
		}
	}
	if ov.Contact.Phone != "" {
		p.Phone = ov.Contact.Phone
	}
	if ov.Contact.Email != "" {
		p.Email = ov.Contact.Email
	}
	if ov.Timezone != "" {
		p.Timezone = ov.Timezone
	}
	p.BusinessName = ov.ClientName
	return p
}

var (
	punctRe = regexp.MustCompile(`[^\w\s]`)
	wsRe    = regexp.MustCompile(`\s+`)
)

// NormalizeQuestion canonicalizes an FAQ question for dedup: lowercase,
// punctuation stripped, whitespace collapsed.
func NormalizeQuestion(q string) string {
	q = strings.ToLower(q)
	q = punctRe.ReplaceAllString(q, "")
	q = wsRe.ReplaceAllString(q, " ")
	return strings.TrimSpace(q)
}

// MergeFAQs merges template FAQs with tenant FAQs. Questions are deduped
// on their normalized form; when both sides have the same question the
// tenant's entry wins wholesale, but it keeps the slot the question first
// appeared in, so template ordering survives light customization.
func MergeFAQs(template, custom []bot.FAQ) []bot.FAQ {
	order := make([]string, 0, len(template)+len(custom))
	byKey := make(map[string]bot.FAQ, len(template)+len(custom))

	add := func(f bot.FAQ) {
		key := NormalizeQuestion(f.Question)
		if key == "" {
			return
		}
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = f
	}
	for _, f := range template {
		add(f)
	}
	for _, f := range custom {
		add(f)
	}

	merged := make([]bot.FAQ, 0, len(order))
	for _, key := range order {
		merged = append(merged, byKey[key])
	}
	return merged
}
