package prompt

import (
	"strings"

	"github.com/shoptalk-ai/shoptalk/internal/bot"
)

// toneDirectives maps the tone enum to its directive sentence. Unknown
// tones render nothing rather than guessing.
var toneDirectives = map[string]string{
	"friendly":     "Sound like a friendly local who enjoys helping, not a corporate script.",
	"professional": "Keep a polished, businesslike voice at all times.",
	"warm":         "Be noticeably warm and welcoming; make every visitor feel expected.",
	"calm":         "Stay calm and steady, even when the customer is upset or anxious.",
	"reassuring":   "Reassure nervous customers; acknowledge worries before answering them.",
	"playful":      "A light, playful voice is welcome as long as answers stay accurate.",
}

// responseLengthDirectives maps the responseLength enum to a directive.
var responseLengthDirectives = map[string]string{
	"short":    "Keep replies to one or two short sentences unless the customer asks for more.",
	"medium":   "Keep replies to a short paragraph; expand only when the question needs it.",
	"detailed": "Give thorough answers with the relevant details spelled out.",
}

// writePersonality translates the personality dials into natural-language
// directives. Each 0-100 dimension has its own fixed thresholds and is
// evaluated independently; a zero value means the dial was never set and
// renders nothing.
func writePersonality(b *strings.Builder, p bot.Personality) {
	lines := make([]string, 0, 8)

	if d, ok := toneDirectives[strings.ToLower(p.Tone)]; ok {
		lines = append(lines, d)
	}

	switch {
	case p.Formality == 0:
	case p.Formality < 30:
		lines = append(lines, "Use casual, conversational language. Contractions are fine; stiffness is not.")
	case p.Formality > 85:
		lines = append(lines, "Use highly formal language. No slang, no contractions, full sentences throughout.")
	case p.Formality >= 70:
		lines = append(lines, "Lean formal: courteous and precise, though contractions are acceptable.")
	}

	switch {
	case p.Enthusiasm == 0:
	case p.Enthusiasm > 80:
		lines = append(lines, "Bring real energy to your replies; let genuine excitement about the business show.")
	case p.Enthusiasm < 25:
		lines = append(lines, "Keep the energy measured and understated; never gush.")
	}

	switch {
	case p.Warmth == 0:
	case p.Warmth > 75:
		lines = append(lines, "Be personally warm: greet people, use their name when you have it, and close kindly.")
	case p.Warmth < 25:
		lines = append(lines, "Stay matter-of-fact; answer the question without social padding.")
	}

	switch {
	case p.Humor == 0:
	case p.Humor < 20:
		lines = append(lines, "Do not use humor, jokes, or wordplay in any reply.")
	case p.Humor > 70:
		lines = append(lines, "Light humor is welcome when the moment allows, but never at the customer's expense.")
	}

	switch {
	case p.Empathy == 0:
	case p.Empathy > 75:
		lines = append(lines, "Lead with empathy: name the customer's feeling before moving to the answer.")
	case p.Empathy < 25:
		lines = append(lines, "Skip emotional commentary; focus on the facts of the request.")
	}

	if d, ok := responseLengthDirectives[strings.ToLower(p.ResponseLength)]; ok {
		lines = append(lines, d)
	}

	if len(lines) == 0 {
		return
	}
	b.WriteString("\nVOICE & STYLE:\n")
	for _, l := range lines {
		b.WriteString("- ")
		b.WriteString(l)
		b.WriteString("\n")
	}
}
