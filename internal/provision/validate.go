package provision

import (
	"fmt"

	"github.com/shoptalk-ai/shoptalk/internal/bot"
)

// Validation is the result of a structural template pre-flight. It never
// blocks provisioning by itself; CLIs use it as a deployment gate.
type Validation struct {
	Valid  bool
	Errors []string
}

// ValidateTemplateRecord checks that a persisted template record carries
// everything provisioning and the prompt compiler need. No side effects.
// A record can drift into this state when the catalog changes after
// seeding, so the checks run against the persisted row, not the catalog.
func ValidateTemplateRecord(rec *bot.TemplateRecord) Validation {
	var errs []string

	if rec == nil {
		return Validation{Errors: []string{"template record is nil"}}
	}
	if rec.TemplateID == "" {
		errs = append(errs, "templateId is empty")
	}
	if rec.Name == "" {
		errs = append(errs, "name is empty")
	}
	if rec.DefaultConfig == nil {
		errs = append(errs, "defaultConfig is missing or failed to decode")
		return Validation{Valid: false, Errors: errs}
	}

	tc := rec.DefaultConfig
	if tc.SystemPrompt == "" {
		errs = append(errs, "defaultConfig.systemPrompt is empty")
	}
	if tc.BusinessProfile.Type == "" {
		errs = append(errs, "defaultConfig.businessProfile.type is empty")
	}
	switch tc.BookingProfile.Mode {
	case bot.BookingInternal, bot.BookingExternal:
	case "":
		errs = append(errs, "defaultConfig.bookingProfile.mode is empty")
	default:
		errs = append(errs, fmt.Sprintf("defaultConfig.bookingProfile.mode %q is not internal or external", tc.BookingProfile.Mode))
	}
	if tc.BookingProfile.PrimaryCTA == "" {
		errs = append(errs, "defaultConfig.bookingProfile.primaryCTA is empty")
	}
	if tc.Theme.WelcomeMessage == "" {
		errs = append(errs, "defaultConfig.theme.welcomeMessage is empty")
	}
	for i, f := range tc.FAQs {
		if f.Question == "" {
			errs = append(errs, fmt.Sprintf("defaultConfig.faqs[%d].question is empty", i))
		}
		if f.Answer == "" {
			errs = append(errs, fmt.Sprintf("defaultConfig.faqs[%d].answer is empty", i))
		}
	}
	if len(tc.Rules.CrisisHandling.Keywords) == 0 {
		errs = append(errs, "defaultConfig.rules.crisisHandling.keywords is empty")
	}

	return Validation{Valid: len(errs) == 0, Errors: errs}
}
