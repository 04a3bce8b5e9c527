// Package bot defines the configuration types shared by the template
// catalog, the provisioning engine, the prompt compiler, and the stores.
// All of these types round-trip through the JSON config columns, so the
// JSON tags here are the persisted wire shape.
package bot

// BookingMode selects how a bot handles appointment requests.
type BookingMode string

const (
	// BookingInternal captures lead details for human follow-up.
	BookingInternal BookingMode = "internal"
	// BookingExternal redirects to a third-party booking page.
	BookingExternal BookingMode = "external"
)

// BusinessProfile describes the business a bot answers for.
type BusinessProfile struct {
	BusinessName string   `json:"businessName"`
	Type         string   `json:"type"`
	Description  string   `json:"description,omitempty"`
	Address      string   `json:"address,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Email        string   `json:"email,omitempty"`
	Website      string   `json:"website,omitempty"`
	Hours        string   `json:"hours,omitempty"`
	Services     []string `json:"services,omitempty"`
	Timezone     string   `json:"timezone,omitempty"`
}

// FAQ is a single question/answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Personality holds the dials the prompt compiler translates into
// natural-language directives. The numeric dimensions range 0-100;
// zero values mean "not set" and render no directive.
type Personality struct {
	Tone           string `json:"tone,omitempty"`
	Formality      int    `json:"formality,omitempty"`
	Enthusiasm     int    `json:"enthusiasm,omitempty"`
	Warmth         int    `json:"warmth,omitempty"`
	Humor          int    `json:"humor,omitempty"`
	Empathy        int    `json:"empathy,omitempty"`
	ResponseLength string `json:"responseLength,omitempty"`
}

// Theme carries the widget appearance defaults supplied by a template.
type Theme struct {
	PrimaryColor   string `json:"primaryColor"`
	WelcomeMessage string `json:"welcomeMessage"`
}

// CTAButton is a call-to-action rendered in the chat widget. Pressing it
// injects Prompt as a user message.
type CTAButton struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Prompt    string `json:"prompt"`
	IsPrimary bool   `json:"isPrimary,omitempty"`
}

// BookingProfile describes a template's booking behavior.
type BookingProfile struct {
	Mode              BookingMode `json:"mode"`
	PrimaryCTA        string      `json:"primaryCTA"`
	SecondaryCTA      string      `json:"secondaryCTA,omitempty"`
	ExternalProviders []string    `json:"externalProviders,omitempty"`
	FailsafeEnabled   bool        `json:"failsafeEnabled"`
}

// ServiceItem is one entry of a template's services catalog.
type ServiceItem struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceRange  string `json:"priceRange,omitempty"`
}

// CrisisHandling configures the crisis guard for one bot.
type CrisisHandling struct {
	Keywords         []string `json:"keywords"`
	ResponseTemplate string   `json:"responseTemplate,omitempty"`
}

// Rules bounds what a bot may talk about and how it escalates.
type Rules struct {
	AllowedTopics   []string       `json:"allowedTopics,omitempty"`
	ForbiddenTopics []string       `json:"forbiddenTopics,omitempty"`
	CrisisHandling  CrisisHandling `json:"crisisHandling"`
}

// BookingCapture is the automation block the provisioning engine always
// forces on: enabled, with the resolved mode and failsafe.
type BookingCapture struct {
	Enabled         bool        `json:"enabled"`
	Mode            BookingMode `json:"mode"`
	ExternalURL     string      `json:"externalUrl,omitempty"`
	FailsafeEnabled bool        `json:"failsafeEnabled"`
}

// Automations groups the per-bot automation toggles.
type Automations struct {
	BookingCapture BookingCapture `json:"bookingCapture"`
	LeadDetection  LeadDetection  `json:"leadDetection"`
	FollowUp       bool           `json:"followUp,omitempty"`
}

// LeadDetection controls how aggressively the conversation layer flags
// potential leads.
type LeadDetection struct {
	Enabled     bool   `json:"enabled"`
	Sensitivity string `json:"sensitivity"` // low, medium, high
}

// Metadata records provenance and lifecycle state for a bot config.
type Metadata struct {
	ClonedFrom       string `json:"clonedFrom"`
	IndustryTemplate string `json:"industryTemplate"`
	IsDemo           bool   `json:"isDemo"`
	OnboardingStatus string `json:"onboardingStatus"`
	BehaviorPreset   string `json:"behaviorPreset,omitempty"`
	Plan             string `json:"plan,omitempty"`
}

// TemplateConfig is the defaultConfig JSON persisted with each template
// record. It is a superset of what the in-code catalog declares: seeding
// fills in rules and automations alongside the catalog defaults.
type TemplateConfig struct {
	BusinessProfile BusinessProfile `json:"businessProfile"`
	SystemPrompt    string          `json:"systemPrompt"`
	FAQs            []FAQ           `json:"faqs"`
	Rules           Rules           `json:"rules"`
	Automations     Automations     `json:"automations"`
	Theme           Theme           `json:"theme"`
	Personality     Personality     `json:"personality"`
	BookingProfile  BookingProfile  `json:"bookingProfile"`
	CTAButtons      []CTAButton     `json:"ctaButtons"`
	Disclaimer      string          `json:"disclaimer,omitempty"`
	ServicesCatalog []ServiceItem   `json:"servicesCatalog,omitempty"`
}

// Config is one provisioned bot. Created once by the provisioning engine,
// read on every conversation turn by the prompt compiler and crisis guard.
type Config struct {
	ClientID           string          `json:"clientId"`
	BotID              string          `json:"botId"`
	Name               string          `json:"name"`
	Description        string          `json:"description,omitempty"`
	BotType            string          `json:"botType"`
	BusinessProfile    BusinessProfile `json:"businessProfile"`
	Rules              Rules           `json:"rules"`
	SystemPrompt       string          `json:"systemPrompt"`
	FAQs               []FAQ           `json:"faqs"`
	Automations        Automations     `json:"automations"`
	Personality        Personality     `json:"personality"`
	QuickActions       []CTAButton     `json:"quickActions,omitempty"`
	ExternalBookingURL string          `json:"externalBookingUrl,omitempty"`
	Metadata           Metadata        `json:"metadata"`
}
