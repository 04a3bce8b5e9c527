// Package prompt compiles a bot configuration into the system prompt the
// conversation layer hands to the model. Compilation is pure and runs
// once per turn; nothing here is cached or persisted.
package prompt

import (
	"fmt"
	"strings"

	"github.com/shoptalk-ai/shoptalk/internal/bot"
)

// BuildSystemPrompt renders cfg into the final instruction text. The
// block order is fixed; blocks with nothing to say render empty. Calling
// it twice with identical inputs yields byte-identical output, and cfg is
// never mutated.
//
// preset overrides the behavior preset stored on the config; pass "" to
// use the config's own preset.
func BuildSystemPrompt(cfg *bot.Config, preset string) string {
	if cfg == nil {
		return ""
	}
	if preset == "" {
		preset = cfg.Metadata.BehaviorPreset
	}

	var b strings.Builder

	if intro := strings.TrimSpace(cfg.SystemPrompt); intro != "" {
		b.WriteString(intro)
		b.WriteString("\n")
	}

	writeBusinessInfo(&b, cfg.BusinessProfile)
	writeFAQs(&b, cfg.FAQs)
	writePersonality(&b, cfg.Personality)
	writeBookingContract(&b, cfg.ExternalBookingURL)
	writeDisclaimers(&b, cfg.BusinessProfile.Type)

	b.WriteString("\nWHEN UNSURE:\n")
	b.WriteString("If you are not confident in an answer, say so plainly and offer to have someone from the team follow up. ")
	b.WriteString("Never invent prices, availability, policies, or medical, legal, or financial facts. ")
	b.WriteString("An honest \"I'm not sure\" is always better than a guess.\n")

	writePresetBlock(&b, preset)

	return b.String()
}

func writeBusinessInfo(b *strings.Builder, p bot.BusinessProfile) {
	lines := make([]string, 0, 10)
	appendLine := func(label, value string) {
		if value != "" {
			lines = append(lines, fmt.Sprintf("- %s: %s", label, value))
		}
	}
	appendLine("Business", p.BusinessName)
	appendLine("Type", p.Type)
	appendLine("About", p.Description)
	appendLine("Address", p.Address)
	appendLine("Phone", p.Phone)
	appendLine("Email", p.Email)
	appendLine("Website", p.Website)
	appendLine("Hours", p.Hours)
	if len(p.Services) > 0 {
		appendLine("Services", strings.Join(p.Services, ", "))
	}
	appendLine("Timezone", p.Timezone)

	if len(lines) == 0 {
		return
	}
	b.WriteString("\nBUSINESS INFORMATION:\n")
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
}

func writeFAQs(b *strings.Builder, faqs []bot.FAQ) {
	if len(faqs) == 0 {
		return
	}
	b.WriteString("\nFREQUENTLY ASKED QUESTIONS:\n")
	b.WriteString("Use these answers when they fit the question. Do not contradict them.\n")
	for i, f := range faqs {
		fmt.Fprintf(b, "%d. Q: %s\n   A: %s\n", i+1, f.Question, f.Answer)
	}
}

func writeBookingContract(b *strings.Builder, externalURL string) {
	b.WriteString("\nBOOKING:\n")
	if externalURL != "" {
		fmt.Fprintf(b, "When a customer wants to book, send them to the online booking page: %s\n", externalURL)
		b.WriteString("Do not collect appointment details yourself; the booking page handles that. ")
		b.WriteString("You cannot finalize an appointment. Never tell a customer their appointment is locked in, ")
		b.WriteString("finalized, or guaranteed, and never say things like \"you're all set\" — only the booking page completes a booking.\n")
		return
	}
	b.WriteString("When a customer wants to book, collect their name, phone number or email, and preferred day and time, ")
	b.WriteString("then let them know a member of the team will reach out to finish setting it up. ")
	b.WriteString("You cannot finalize an appointment. Never tell a customer their appointment is locked in, ")
	b.WriteString("finalized, or guaranteed, and never say things like \"you're all set\" — a person on the team always completes the final step.\n")
}
