package crisis_test

import (
	"strings"
	"testing"

	"github.com/shoptalk-ai/shoptalk/internal/bot"
	"github.com/shoptalk-ai/shoptalk/internal/crisis"
)

func configWithKeywords(kw ...string) *bot.Config {
	return &bot.Config{
		Rules: bot.Rules{CrisisHandling: bot.CrisisHandling{Keywords: kw}},
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		keywords []string
		want     bool
	}{
		{"configured phrase", "I feel hopeless, thinking about ending it", []string{"ending it"}, true},
		{"case insensitive", "I want to KILL MYSELF", []string{"kill myself"}, true},
		{"punctuation stripped", "kill... myself?", []string{"kill myself"}, true},
		{"missing space defeats phrase match", "killmyself", []string{"kill myself"}, false},
		{"punctuation inside phrase", "I'll do it -- ending it!!", []string{"ending it"}, true},
		{"no match", "what are your hours", []string{"suicide"}, false},
		{"no keywords configured", "I want to end my life", nil, false},
		{"empty message", "", []string{"suicide"}, false},
		// Substring matching has no word boundaries. "die" inside
		// "diet" is a known, accepted false positive; the guard fails
		// toward escalation.
		{"substring false positive", "any tips on my keto diet", []string{"die"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := crisis.Detect(tt.message, configWithKeywords(tt.keywords...))
			if got != tt.want {
				t.Errorf("Detect(%q, %v) = %v, want %v", tt.message, tt.keywords, got, tt.want)
			}
		})
	}
}

func TestDetect_NilConfig(t *testing.T) {
	if crisis.Detect("anything", nil) {
		t.Error("nil config should never detect")
	}
}

func TestResponse_ConfiguredTemplateWinsVerbatim(t *testing.T) {
	cfg := configWithKeywords("suicide")
	cfg.Rules.CrisisHandling.ResponseTemplate = "Please call our on-call counselor at 555-0911 right now."
	cfg.BusinessProfile.Type = "sober living home" // would otherwise select the extended script

	got := crisis.Response(cfg)
	if got != "Please call our on-call counselor at 555-0911 right now." {
		t.Errorf("response = %q, want the configured template verbatim", got)
	}
}

func TestResponse_RecoveryVertical(t *testing.T) {
	cfg := configWithKeywords("suicide")
	cfg.BusinessProfile.Type = "sober living home"

	got := crisis.Response(cfg)
	for _, want := range []string{"911", "988", "SAMHSA", "1-800-662-4357"} {
		if !strings.Contains(got, want) {
			t.Errorf("recovery response missing %q", want)
		}
	}
	if !strings.Contains(got, "name and phone number") {
		t.Error("recovery response missing the contact-capture offer")
	}
}

func TestResponse_Generic(t *testing.T) {
	cfg := configWithKeywords("suicide")
	cfg.BusinessProfile.Type = "barbershop"

	got := crisis.Response(cfg)
	if !strings.Contains(got, "911") {
		t.Error("generic response missing 911")
	}
	if strings.Contains(got, "SAMHSA") {
		t.Error("generic response should not include the extended recovery script")
	}
}
