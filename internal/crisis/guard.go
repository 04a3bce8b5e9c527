// Package crisis gates escalation: it classifies inbound messages against
// a bot's configured crisis keywords and selects the escalation response.
// The conversation layer must call Detect on every inbound message before
// generating a normal reply.
package crisis

import (
	"regexp"
	"strings"

	"github.com/shoptalk-ai/shoptalk/internal/bot"
)

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// recoveryTypes marks business types that get the extended escalation
// script instead of the generic one.
var recoveryTypes = []string{"sober living", "recovery", "rehab", "halfway", "sobriety", "treatment"}

// Detect reports whether the message contains any configured crisis
// keyword. Matching is deliberately blunt: the message is lowercased and
// stripped of punctuation, and keywords match as plain substrings with no
// word boundaries. That means "die" matches inside "diet". The false
// positives are accepted on purpose; tightening the matcher changes
// safety behavior and is a product decision, not a cleanup.
func Detect(message string, cfg *bot.Config) bool {
	if cfg == nil || len(cfg.Rules.CrisisHandling.Keywords) == 0 {
		return false
	}
	normalized := normalize(message)
	if normalized == "" {
		return false
	}
	for _, kw := range cfg.Rules.CrisisHandling.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// Response selects the escalation text for a bot: the configured template
// verbatim when one is set, an extended script for recovery-housing
// verticals, and a generic emergency line otherwise.
func Response(cfg *bot.Config) string {
	if cfg != nil && cfg.Rules.CrisisHandling.ResponseTemplate != "" {
		return cfg.Rules.CrisisHandling.ResponseTemplate
	}
	if cfg != nil && isRecoveryType(cfg.BusinessProfile.Type) {
		return recoveryResponse
	}
	return genericResponse
}

func normalize(s string) string {
	s = strings.ToLower(s)
	s = nonWordRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func isRecoveryType(businessType string) bool {
	bt := strings.ToLower(businessType)
	for _, t := range recoveryTypes {
		if strings.Contains(bt, t) {
			return true
		}
	}
	return false
}

const recoveryResponse = `I'm really glad you said something, and I want to make sure you get real support right now.

If you are in immediate danger, call 911 or your local emergency number.
You can also call or text 988 — the Suicide & Crisis Lifeline — any time, day or night.
For substance use support, the SAMHSA National Helpline is free and confidential: 1-800-662-4357.

You don't have to handle this alone. If you'd like, share your name and phone number and I'll have someone from our team reach out to you personally.`

const genericResponse = `I'm concerned about what you just shared. If you are in immediate danger or thinking about harming yourself, please call 911 or your local emergency number right away. You can also call or text 988 to reach the Suicide & Crisis Lifeline at any time.`
