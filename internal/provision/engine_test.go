package provision_test

import (
	"strings"
	"testing"

	"github.com/shoptalk-ai/shoptalk/internal/bot"
	"github.com/shoptalk-ai/shoptalk/internal/catalog"
	"github.com/shoptalk-ai/shoptalk/internal/prompt"
	"github.com/shoptalk-ai/shoptalk/internal/provision"
	"github.com/shoptalk-ai/shoptalk/internal/seed"
)

func testRecord() *bot.TemplateRecord {
	return &bot.TemplateRecord{
		TemplateID:  "barber_template",
		Name:        "Barbershop & Salon",
		Description: "Front-desk assistant for barbershops.",
		BotType:     "receptionist",
		IsActive:    true,
		DefaultConfig: &bot.TemplateConfig{
			BusinessProfile: bot.BusinessProfile{
				Type:  "barbershop",
				Hours: "Tue-Fri 9am-7pm",
				Phone: "555-0100",
			},
			SystemPrompt: "You are the front-desk assistant for a barbershop.",
			FAQs: []bot.FAQ{
				{Question: "What are your hours?", Answer: "9-5"},
				{Question: "Do you take walk-ins?", Answer: "Yes."},
			},
			BookingProfile: bot.BookingProfile{
				Mode:            bot.BookingInternal,
				PrimaryCTA:      "Book an appointment",
				FailsafeEnabled: true,
			},
			Theme:       bot.Theme{PrimaryColor: "#111111", WelcomeMessage: "Welcome in!"},
			Personality: bot.Personality{Tone: "friendly", Formality: 25},
			Rules: bot.Rules{
				CrisisHandling: bot.CrisisHandling{Keywords: []string{"suicide"}},
			},
		},
	}
}

func baseOverrides() provision.Overrides {
	return provision.Overrides{ClientID: "acme", ClientName: "Acme Cuts"}
}

func TestBuildClientFromTemplate_ValidationOrder(t *testing.T) {
	noConfig := testRecord()
	noConfig.DefaultConfig = nil

	tests := []struct {
		name     string
		rec      *bot.TemplateRecord
		ov       provision.Overrides
		wantCode string
	}{
		{"missing template", nil, provision.Overrides{}, provision.CodeMissingTemplate},
		{"missing clientId beats missing clientName", testRecord(), provision.Overrides{}, provision.CodeMissingRequiredField},
		{"missing clientName", testRecord(), provision.Overrides{ClientID: "acme"}, provision.CodeMissingRequiredField},
		{"missing clientId beats bad config", noConfig, provision.Overrides{}, provision.CodeMissingRequiredField},
		{"bad config last", noConfig, baseOverrides(), provision.CodeInvalidTemplateConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := provision.BuildClientFromTemplate(tt.rec, tt.ov)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			verr, ok := err.(*provision.ValidationError)
			if !ok {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if verr.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", verr.Code, tt.wantCode)
			}
		})
	}
}

func TestBuildClientFromTemplate_ValidationFields(t *testing.T) {
	_, err := provision.BuildClientFromTemplate(testRecord(), provision.Overrides{ClientID: "acme"})
	verr, ok := err.(*provision.ValidationError)
	if !ok {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if verr.Field != "clientName" {
		t.Errorf("field = %q, want %q", verr.Field, "clientName")
	}
}

func TestBusinessNameAlwaysEqualsClientName(t *testing.T) {
	// The profile override tries to smuggle in a different business name
	// through every channel; the client name must win regardless.
	tests := []struct {
		name string
		ov   provision.Overrides
	}{
		{"no overrides", baseOverrides()},
		{"profile override with conflicting name", provision.Overrides{
			ClientID:   "acme",
			ClientName: "Acme Cuts",
			BusinessProfile: &bot.BusinessProfile{
				BusinessName: "Totally Different LLC",
				Description:  "A different description",
			},
		}},
		{"contact override only", provision.Overrides{
			ClientID:   "acme",
			ClientName: "Acme Cuts",
			Contact:    provision.Contact{Phone: "555-0199"},
		}},
		{"everything at once", provision.Overrides{
			ClientID:   "acme",
			ClientName: "Acme Cuts",
			BusinessProfile: &bot.BusinessProfile{
				BusinessName: "Shadow Name",
				Phone:        "555-0111",
			},
			Contact: provision.Contact{Phone: "555-0122", Email: "front@acme.example"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := provision.BuildClientFromTemplate(testRecord(), tt.ov)
			if err != nil {
				t.Fatalf("BuildClientFromTemplate: %v", err)
			}
			if got := b.Config.BusinessProfile.BusinessName; got != "Acme Cuts" {
				t.Errorf("businessName = %q, want %q", got, "Acme Cuts")
			}
		})
	}
}

func TestBusinessProfileMergeOrder(t *testing.T) {
	ov := provision.Overrides{
		ClientID:   "acme",
		ClientName: "Acme Cuts",
		BusinessProfile: &bot.BusinessProfile{
			Phone: "555-profile",
			Hours: "Mon-Sat 8am-8pm",
		},
		Contact:  provision.Contact{Phone: "555-contact"},
		Timezone: "America/Chicago",
	}
	b, err := provision.BuildClientFromTemplate(testRecord(), ov)
	if err != nil {
		t.Fatalf("BuildClientFromTemplate: %v", err)
	}
	p := b.Config.BusinessProfile
	if p.Phone != "555-contact" {
		t.Errorf("phone = %q, want contact override %q", p.Phone, "555-contact")
	}
	if p.Hours != "Mon-Sat 8am-8pm" {
		t.Errorf("hours = %q, want profile override", p.Hours)
	}
	if p.Type != "barbershop" {
		t.Errorf("type = %q, want template default", p.Type)
	}
	if p.Timezone != "America/Chicago" {
		t.Errorf("timezone = %q, want %q", p.Timezone, "America/Chicago")
	}
}

func TestFAQMergeDedupesOnNormalizedQuestion(t *testing.T) {
	ov := baseOverrides()
	ov.CustomFAQs = []bot.FAQ{{Question: "What Are Your Hours?", Answer: "24/7"}}

	b, err := provision.BuildClientFromTemplate(testRecord(), ov)
	if err != nil {
		t.Fatalf("BuildClientFromTemplate: %v", err)
	}

	var hours []bot.FAQ
	for _, f := range b.FAQs {
		if provision.NormalizeQuestion(f.Question) == "what are your hours" {
			hours = append(hours, f)
		}
	}
	if len(hours) != 1 {
		t.Fatalf("hours FAQ count = %d, want 1", len(hours))
	}
	if hours[0].Answer != "24/7" {
		t.Errorf("answer = %q, want %q (custom FAQ wins)", hours[0].Answer, "24/7")
	}
	// The deduped entry keeps the template's slot.
	if b.FAQs[0].Answer != "24/7" {
		t.Errorf("first FAQ answer = %q, want the overridden hours entry first", b.FAQs[0].Answer)
	}
	if len(b.FAQs) != 2 {
		t.Errorf("total FAQs = %d, want 2", len(b.FAQs))
	}
}

func TestNormalizeQuestion(t *testing.T) {
	tests := []struct{ in, want string }{
		{"What are your hours?", "what are your hours"},
		{"  What   ARE your hours!!  ", "what are your hours"},
		{"What's up?", "whats up"},
	}
	for _, tt := range tests {
		if got := provision.NormalizeQuestion(tt.in); got != tt.want {
			t.Errorf("NormalizeQuestion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBehaviorPresetDefaulting(t *testing.T) {
	b, err := provision.BuildClientFromTemplate(testRecord(), baseOverrides())
	if err != nil {
		t.Fatalf("BuildClientFromTemplate: %v", err)
	}
	if got := b.ClientSettings.BehaviorPreset; got != "support_lead_focused" {
		t.Errorf("behaviorPreset = %q, want %q", got, "support_lead_focused")
	}
	if got := b.Config.Automations.LeadDetection.Sensitivity; got != "medium" {
		t.Errorf("leadDetectionSensitivity = %q, want %q", got, "medium")
	}
}

func TestLeadSensitivityTable(t *testing.T) {
	tests := []struct{ preset, want string }{
		{"support_lead_focused", "medium"},
		{"sales_focused_soft", "high"},
		{"support_only", "low"},
		{"compliance_strict", "low"},
		{"sales_heavy", "high"},
	}
	for _, tt := range tests {
		ov := baseOverrides()
		ov.BehaviorPreset = tt.preset
		b, err := provision.BuildClientFromTemplate(testRecord(), ov)
		if err != nil {
			t.Fatalf("BuildClientFromTemplate(%s): %v", tt.preset, err)
		}
		if got := b.Config.Automations.LeadDetection.Sensitivity; got != tt.want {
			t.Errorf("%s: sensitivity = %q, want %q", tt.preset, got, tt.want)
		}
	}
}

func TestBotIDResolution(t *testing.T) {
	b, err := provision.BuildClientFromTemplate(testRecord(), baseOverrides())
	if err != nil {
		t.Fatalf("BuildClientFromTemplate: %v", err)
	}
	if b.Config.BotID != "acme_main" {
		t.Errorf("botId = %q, want %q", b.Config.BotID, "acme_main")
	}

	ov := baseOverrides()
	ov.BotID = "acme_custom"
	b, err = provision.BuildClientFromTemplate(testRecord(), ov)
	if err != nil {
		t.Fatalf("BuildClientFromTemplate: %v", err)
	}
	if b.Config.BotID != "acme_custom" {
		t.Errorf("botId = %q, want override %q", b.Config.BotID, "acme_custom")
	}
}

func TestBookingSeedModeAndFailsafe(t *testing.T) {
	// Internal by default.
	b, err := provision.BuildClientFromTemplate(testRecord(), baseOverrides())
	if err != nil {
		t.Fatalf("BuildClientFromTemplate: %v", err)
	}
	if b.BookingProfile.Mode != bot.BookingInternal {
		t.Errorf("mode = %q, want internal", b.BookingProfile.Mode)
	}
	if !b.BookingProfile.FailsafeEnabled {
		t.Error("failsafeEnabled = false, want template policy true")
	}

	// External when a booking URL is supplied.
	ov := baseOverrides()
	ov.ExternalBookingURL = "https://square.site/acme"
	b, err = provision.BuildClientFromTemplate(testRecord(), ov)
	if err != nil {
		t.Fatalf("BuildClientFromTemplate: %v", err)
	}
	if b.BookingProfile.Mode != bot.BookingExternal {
		t.Errorf("mode = %q, want external", b.BookingProfile.Mode)
	}
	if b.BookingProfile.ExternalURL != "https://square.site/acme" {
		t.Errorf("externalUrl = %q, want the override", b.BookingProfile.ExternalURL)
	}

	// The seed tracks the template's failsafe policy even when false,
	// while the automation block always forces its own failsafe on.
	rec := testRecord()
	rec.DefaultConfig.BookingProfile.FailsafeEnabled = false
	b, err = provision.BuildClientFromTemplate(rec, baseOverrides())
	if err != nil {
		t.Fatalf("BuildClientFromTemplate: %v", err)
	}
	if b.BookingProfile.FailsafeEnabled {
		t.Error("seed failsafeEnabled = true, want template policy false")
	}
	if !b.Config.Automations.BookingCapture.FailsafeEnabled {
		t.Error("automation bookingCapture.failsafeEnabled = false, want forced true")
	}
	if !b.Config.Automations.BookingCapture.Enabled {
		t.Error("automation bookingCapture.enabled = false, want forced true")
	}
}

func TestMetadata(t *testing.T) {
	b, err := provision.BuildClientFromTemplate(testRecord(), baseOverrides())
	if err != nil {
		t.Fatalf("BuildClientFromTemplate: %v", err)
	}
	m := b.Config.Metadata
	if m.ClonedFrom != "barber_template" {
		t.Errorf("clonedFrom = %q, want %q", m.ClonedFrom, "barber_template")
	}
	if m.IsDemo {
		t.Error("isDemo = true, want false")
	}
	if m.OnboardingStatus != "draft" {
		t.Errorf("onboardingStatus = %q, want %q", m.OnboardingStatus, "draft")
	}
}

func TestEngineDoesNotMutateInputs(t *testing.T) {
	rec := testRecord()
	wantName := rec.DefaultConfig.BusinessProfile.BusinessName
	wantFAQs := len(rec.DefaultConfig.FAQs)

	ov := baseOverrides()
	ov.CustomFAQs = []bot.FAQ{{Question: "New?", Answer: "Yes."}}
	if _, err := provision.BuildClientFromTemplate(rec, ov); err != nil {
		t.Fatalf("BuildClientFromTemplate: %v", err)
	}

	if rec.DefaultConfig.BusinessProfile.BusinessName != wantName {
		t.Error("template business profile was mutated")
	}
	if len(rec.DefaultConfig.FAQs) != wantFAQs {
		t.Error("template FAQ list was mutated")
	}
}

// TestProvisionBarberEndToEnd walks the real catalog barber template
// through seeding-record construction, provisioning, and compilation.
func TestProvisionBarberEndToEnd(t *testing.T) {
	tmpl, ok := catalog.Get("barber")
	if !ok {
		t.Fatal("barber template missing from catalog")
	}
	rec := seed.Record(tmpl, 0)

	b, err := provision.BuildClientFromTemplate(rec, provision.Overrides{
		ClientID:           "acme_barber",
		ClientName:         "Acme Barbers",
		ExternalBookingURL: "https://square.site/acme",
	})
	if err != nil {
		t.Fatalf("BuildClientFromTemplate: %v", err)
	}

	if b.Config.BotID != "acme_barber_main" {
		t.Errorf("botId = %q, want %q", b.Config.BotID, "acme_barber_main")
	}
	if b.Config.BusinessProfile.BusinessName != "Acme Barbers" {
		t.Errorf("businessName = %q, want %q", b.Config.BusinessProfile.BusinessName, "Acme Barbers")
	}
	if b.BookingProfile.Mode != bot.BookingExternal {
		t.Errorf("booking mode = %q, want external", b.BookingProfile.Mode)
	}
	if !b.BookingProfile.FailsafeEnabled {
		t.Error("failsafeEnabled = false, want true")
	}

	compiled := prompt.BuildSystemPrompt(b.Config, "")
	if !strings.Contains(compiled, "https://square.site/acme") {
		t.Error("compiled prompt missing the external booking URL")
	}
	for _, phrase := range []string{"I've booked", "booking is confirmed", "reserved your"} {
		if strings.Contains(compiled, phrase) {
			t.Errorf("compiled prompt contains forbidden phrase %q", phrase)
		}
	}
}
