// Package catalog holds the built-in industry templates. The catalog is
// immutable build-time data: the seeding service copies it into the
// template store, and from then on the persisted store is the source of
// truth at runtime.
package catalog

import "github.com/shoptalk-ai/shoptalk/internal/bot"

// IndustryTemplate is one built-in reference configuration for a business
// vertical.
type IndustryTemplate struct {
	ID          string
	Name        string
	BotType     string
	Icon        string
	Description string
	Booking     bot.BookingProfile
	CTAButtons  []bot.CTAButton
	Disclaimer  string
	Services    []bot.ServiceItem
	Defaults    Defaults
}

// Defaults is the portion of a template that becomes the starting bot
// configuration for a new client.
type Defaults struct {
	BusinessProfile   bot.BusinessProfile
	SystemPromptIntro string
	FAQs              []bot.FAQ
	Personality       bot.Personality
	Theme             bot.Theme
}

// DefaultCrisisKeywords is the baseline crisis vocabulary every template
// starts with. Matching is substring-based, so short entries trade recall
// for false positives on purpose.
var DefaultCrisisKeywords = []string{
	"suicide",
	"kill myself",
	"end my life",
	"ending it",
	"self harm",
	"hurt myself",
	"want to die",
	"hopeless",
	"overdose",
}

// RecoveryCrisisKeywords extends the baseline for recovery-housing bots,
// where relapse language is itself an escalation signal.
var RecoveryCrisisKeywords = []string{
	"relapse",
	"relapsing",
	"using again",
	"drinking again",
	"craving",
}

// All returns every built-in template in display order.
func All() []IndustryTemplate {
	return templates
}

// Get returns the template with the given catalog id.
func Get(id string) (IndustryTemplate, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return IndustryTemplate{}, false
}

var templates = []IndustryTemplate{
	{
		ID:          "barber",
		Name:        "Barbershop & Salon",
		BotType:     "receptionist",
		Icon:        "scissors",
		Description: "Front-desk assistant for barbershops and salons: services, pricing, walk-in policy, and appointment requests.",
		Booking: bot.BookingProfile{
			Mode:            bot.BookingInternal,
			PrimaryCTA:      "Book an appointment",
			SecondaryCTA:    "See services & prices",
			FailsafeEnabled: true,
		},
		CTAButtons: []bot.CTAButton{
			{ID: "book", Label: "Book an appointment", Prompt: "I'd like to book an appointment.", IsPrimary: true},
			{ID: "services", Label: "Services & prices", Prompt: "What services do you offer and what do they cost?"},
			{ID: "hours", Label: "Hours & location", Prompt: "What are your hours and where are you located?"},
		},
		Services: []bot.ServiceItem{
			{Name: "Haircut", PriceRange: "$25-$40"},
			{Name: "Beard trim", PriceRange: "$15-$20"},
			{Name: "Hot towel shave", PriceRange: "$30-$45"},
			{Name: "Kids cut", PriceRange: "$18-$25"},
		},
		Defaults: Defaults{
			BusinessProfile: bot.BusinessProfile{
				Type:        "barbershop",
				Description: "Neighborhood barbershop offering cuts, fades, beard work, and hot towel shaves.",
				Hours:       "Tue-Fri 9am-7pm, Sat 8am-5pm",
				Services:    []string{"Haircut", "Fade", "Beard trim", "Hot towel shave", "Kids cut"},
			},
			SystemPromptIntro: "You are the friendly front-desk assistant for a barbershop. You help customers learn about services and pricing, check hours, and request appointments. Keep answers short and concrete, the way a busy shop would at the counter.",
			FAQs: []bot.FAQ{
				{Question: "Do you take walk-ins?", Answer: "Yes, walk-ins are welcome, but booked appointments are seated first. Mid-week mornings usually have the shortest wait."},
				{Question: "What are your hours?", Answer: "Tuesday through Friday 9am-7pm and Saturday 8am-5pm. Closed Sunday and Monday."},
				{Question: "How much is a haircut?", Answer: "A standard cut runs $25-$40 depending on the barber and style. Beard trims are $15-$20."},
				{Question: "Do you cut kids' hair?", Answer: "We do. Kids' cuts are $18-$25, and weekday afternoons are the calmest time to bring them in."},
			},
			Personality: bot.Personality{Tone: "friendly", Formality: 25},
			Theme:       bot.Theme{PrimaryColor: "#1f2937", WelcomeMessage: "Welcome in! Need a cut, a trim, or just our hours?"},
		},
	},
	{
		ID:          "auto",
		Name:        "Auto Repair Shop",
		BotType:     "receptionist",
		Icon:        "wrench",
		Description: "Service advisor assistant for repair shops: estimates, drop-off, status questions, and appointment requests.",
		Booking: bot.BookingProfile{
			Mode:            bot.BookingInternal,
			PrimaryCTA:      "Schedule service",
			SecondaryCTA:    "Get an estimate",
			FailsafeEnabled: true,
		},
		CTAButtons: []bot.CTAButton{
			{ID: "schedule", Label: "Schedule service", Prompt: "I'd like to schedule a service appointment.", IsPrimary: true},
			{ID: "estimate", Label: "Get an estimate", Prompt: "Can I get a rough estimate for a repair?"},
			{ID: "towing", Label: "Towing & drop-off", Prompt: "Do you offer towing, and can I drop my car off after hours?"},
		},
		Services: []bot.ServiceItem{
			{Name: "Oil change", PriceRange: "$45-$90"},
			{Name: "Brake service", PriceRange: "$150-$400 per axle"},
			{Name: "Diagnostics", PriceRange: "$95-$140"},
		},
		Defaults: Defaults{
			BusinessProfile: bot.BusinessProfile{
				Type:        "auto repair shop",
				Description: "Full-service auto repair: diagnostics, brakes, suspension, and scheduled maintenance for most makes.",
				Hours:       "Mon-Fri 7:30am-6pm, Sat 8am-1pm",
				Services:    []string{"Oil change", "Brakes", "Diagnostics", "Suspension", "Scheduled maintenance"},
			},
			SystemPromptIntro: "You are the service-desk assistant for an auto repair shop. You help drivers describe symptoms, understand rough price ranges, and request service appointments. Never diagnose a vehicle definitively from a description; offer an inspection instead.",
			FAQs: []bot.FAQ{
				{Question: "Do I need an appointment for an oil change?", Answer: "Appointments get priority, but we take same-day oil changes when the bays allow. Mornings are your best bet."},
				{Question: "Can you give me a price over chat?", Answer: "We can share typical ranges, but a firm quote needs an inspection. Diagnostics run $95-$140 and are credited toward the repair."},
				{Question: "Do you offer loaner cars?", Answer: "We don't have loaners, but we're a short walk from the transit stop and offer after-hours drop-off and pickup."},
				{Question: "What warranty do you offer?", Answer: "Parts and labor are covered for 12 months or 12,000 miles, whichever comes first."},
			},
			Personality: bot.Personality{Tone: "professional", Formality: 45},
			Theme:       bot.Theme{PrimaryColor: "#b91c1c", WelcomeMessage: "Hi! Tell me what the car is doing and I'll point you in the right direction."},
		},
	},
	{
		ID:          "restaurant",
		Name:        "Restaurant & Cafe",
		BotType:     "host",
		Icon:        "utensils",
		Description: "Host-stand assistant for restaurants: menu, dietary questions, hours, and reservation requests.",
		Booking: bot.BookingProfile{
			Mode:              bot.BookingInternal,
			PrimaryCTA:        "Request a reservation",
			SecondaryCTA:      "See the menu",
			ExternalProviders: []string{"OpenTable", "Resy"},
			FailsafeEnabled:   true,
		},
		CTAButtons: []bot.CTAButton{
			{ID: "reserve", Label: "Request a reservation", Prompt: "I'd like to request a table.", IsPrimary: true},
			{ID: "menu", Label: "Menu & specials", Prompt: "What's on the menu and do you have specials today?"},
			{ID: "dietary", Label: "Dietary options", Prompt: "What vegetarian, vegan, or gluten-free options do you have?"},
		},
		Defaults: Defaults{
			BusinessProfile: bot.BusinessProfile{
				Type:        "restaurant",
				Description: "Casual neighborhood restaurant with a seasonal menu and a full bar.",
				Hours:       "Mon-Thu 11am-10pm, Fri-Sat 11am-11pm, Sun 12pm-9pm",
			},
			SystemPromptIntro: "You are the host-stand assistant for a restaurant. You answer menu and hours questions, note dietary needs, and take reservation requests. If you are unsure about an ingredient or allergen, say so and offer to have the kitchen confirm rather than guessing.",
			FAQs: []bot.FAQ{
				{Question: "Do you take reservations?", Answer: "Yes, for parties of any size. Parties of 8 or more should mention it so we can set a larger table."},
				{Question: "Do you have gluten-free options?", Answer: "Several dishes are gluten-free or can be adjusted. Tell your server about any allergy so the kitchen can take precautions."},
				{Question: "Is there parking?", Answer: "There's a free lot behind the building and street parking out front after 6pm."},
				{Question: "Do you do private events?", Answer: "Our back room seats up to 30. Share your date and headcount and we'll have the events manager follow up."},
			},
			Personality: bot.Personality{Tone: "warm", Formality: 30},
			Theme:       bot.Theme{PrimaryColor: "#b45309", WelcomeMessage: "Welcome! Looking for a table, the menu, or today's specials?"},
		},
	},
	{
		ID:          "dental",
		Name:        "Dental Clinic",
		BotType:     "receptionist",
		Icon:        "tooth",
		Description: "Front-office assistant for dental practices: new-patient intake, insurance questions, and appointment requests.",
		Booking: bot.BookingProfile{
			Mode:            bot.BookingInternal,
			PrimaryCTA:      "Request an appointment",
			SecondaryCTA:    "New patient info",
			FailsafeEnabled: true,
		},
		CTAButtons: []bot.CTAButton{
			{ID: "appointment", Label: "Request an appointment", Prompt: "I'd like to request a dental appointment.", IsPrimary: true},
			{ID: "insurance", Label: "Insurance questions", Prompt: "Do you accept my dental insurance?"},
			{ID: "emergency", Label: "Dental emergency", Prompt: "I have a dental emergency. What should I do?"},
		},
		Disclaimer: "This assistant shares general practice information only and cannot give dental or medical advice. For diagnosis or treatment questions, please speak with the dentist.",
		Defaults: Defaults{
			BusinessProfile: bot.BusinessProfile{
				Type:        "dental clinic",
				Description: "Family dental practice offering preventive care, restorations, and cosmetic dentistry.",
				Hours:       "Mon-Fri 8am-5pm",
			},
			SystemPromptIntro: "You are the front-office assistant for a dental clinic. You help patients with scheduling requests, new-patient paperwork, insurance questions, and office logistics. You never give clinical advice; route clinical questions to the dentist.",
			FAQs: []bot.FAQ{
				{Question: "Are you accepting new patients?", Answer: "Yes. New-patient visits include an exam, x-rays, and a cleaning, and usually run about 90 minutes."},
				{Question: "Do you take my insurance?", Answer: "We work with most major PPO plans. Share your carrier name and we'll verify your benefits before the visit."},
				{Question: "What if I have a dental emergency?", Answer: "Call the office and press 1. We hold same-day slots for emergencies, and the recording lists the after-hours line."},
				{Question: "Do you see children?", Answer: "We see patients of all ages, including kids. First visits for little ones are kept short and gentle."},
			},
			Personality: bot.Personality{Tone: "reassuring", Formality: 55},
			Theme:       bot.Theme{PrimaryColor: "#0e7490", WelcomeMessage: "Hello! I can help with appointments, insurance, and new-patient questions."},
		},
	},
	{
		ID:          "law_firm",
		Name:        "Law Firm",
		BotType:     "intake",
		Icon:        "scale",
		Description: "Intake assistant for law firms: practice areas, consultation requests, and office logistics.",
		Booking: bot.BookingProfile{
			Mode:            bot.BookingInternal,
			PrimaryCTA:      "Request a consultation",
			SecondaryCTA:    "Practice areas",
			FailsafeEnabled: true,
		},
		CTAButtons: []bot.CTAButton{
			{ID: "consult", Label: "Request a consultation", Prompt: "I'd like to request a consultation.", IsPrimary: true},
			{ID: "areas", Label: "Practice areas", Prompt: "What kinds of cases does the firm handle?"},
			{ID: "fees", Label: "Fees & billing", Prompt: "How does the firm charge for its services?"},
		},
		Disclaimer: "Nothing this assistant says is legal advice, and chatting here does not create an attorney-client relationship. For advice about your situation, schedule a consultation with an attorney.",
		Defaults: Defaults{
			BusinessProfile: bot.BusinessProfile{
				Type:        "law firm",
				Description: "Small law firm handling family law, estate planning, and small-business matters.",
				Hours:       "Mon-Fri 9am-5:30pm",
			},
			SystemPromptIntro: "You are the intake assistant for a law firm. You explain practice areas, collect consultation requests, and answer logistics questions. You must never give legal advice, predict case outcomes, or quote fees for a specific matter.",
			FAQs: []bot.FAQ{
				{Question: "Do you offer free consultations?", Answer: "Initial consultations are 30 minutes. Whether there's a fee depends on the practice area; we'll confirm when scheduling."},
				{Question: "What areas of law do you practice?", Answer: "Family law, estate planning, and general counsel for small businesses. If your matter is outside those, we can often refer you."},
				{Question: "How do your fees work?", Answer: "Depending on the matter we work hourly, flat-fee, or on retainer. The attorney will explain the structure at your consultation."},
				{Question: "Can you tell me if I have a case?", Answer: "That takes an attorney reviewing your specifics, so I can't say here. I can set up a consultation where you'll get a real answer."},
			},
			Personality: bot.Personality{Tone: "professional", Formality: 80},
			Theme:       bot.Theme{PrimaryColor: "#1e3a5f", WelcomeMessage: "Welcome. I can describe our practice areas or set up a consultation request."},
		},
	},
	{
		ID:          "real_estate",
		Name:        "Real Estate Agency",
		BotType:     "concierge",
		Icon:        "home",
		Description: "Concierge assistant for real estate offices: listings, showings, and buyer/seller intake.",
		Booking: bot.BookingProfile{
			Mode:            bot.BookingInternal,
			PrimaryCTA:      "Schedule a showing",
			SecondaryCTA:    "Talk to an agent",
			FailsafeEnabled: true,
		},
		CTAButtons: []bot.CTAButton{
			{ID: "showing", Label: "Schedule a showing", Prompt: "I'd like to schedule a showing.", IsPrimary: true},
			{ID: "sell", Label: "Selling my home", Prompt: "I'm thinking about selling my home. What's the process?"},
			{ID: "rent", Label: "Rentals", Prompt: "Do you handle rentals?"},
		},
		Disclaimer: "Pricing and availability change quickly; listing details shared here are informational and should be confirmed with an agent before making decisions.",
		Defaults: Defaults{
			BusinessProfile: bot.BusinessProfile{
				Type:        "real estate agency",
				Description: "Local real estate agency serving buyers, sellers, and renters.",
				Hours:       "Mon-Sat 9am-6pm",
			},
			SystemPromptIntro: "You are the concierge assistant for a real estate agency. You help visitors ask about listings, request showings, and get connected with an agent. Do not estimate what a specific property is worth; offer a comparative market analysis with an agent instead.",
			FAQs: []bot.FAQ{
				{Question: "How do I schedule a showing?", Answer: "Tell me the property or neighborhood you're interested in plus a couple of times that work, and an agent will confirm."},
				{Question: "What's my home worth?", Answer: "An agent can prepare a free comparative market analysis. Share the address and we'll get that started."},
				{Question: "Do you work with first-time buyers?", Answer: "All the time. We'll walk you through pre-approval, searching, and making an offer step by step."},
				{Question: "Do you handle rentals?", Answer: "We manage a small rental portfolio and can also refer you to trusted property managers for anything we don't list."},
			},
			Personality: bot.Personality{Tone: "friendly", Formality: 50},
			Theme:       bot.Theme{PrimaryColor: "#047857", WelcomeMessage: "Hi there! House hunting, selling, or just curious about the market?"},
		},
	},
	{
		ID:          "church",
		Name:        "Church & Ministry",
		BotType:     "greeter",
		Icon:        "church",
		Description: "Greeter assistant for churches and ministries: service times, visits, groups, and prayer requests.",
		Booking: bot.BookingProfile{
			Mode:            bot.BookingInternal,
			PrimaryCTA:      "Plan a visit",
			SecondaryCTA:    "Service times",
			FailsafeEnabled: true,
		},
		CTAButtons: []bot.CTAButton{
			{ID: "visit", Label: "Plan a visit", Prompt: "I'd like to plan a visit this Sunday.", IsPrimary: true},
			{ID: "times", Label: "Service times", Prompt: "When are your services?"},
			{ID: "prayer", Label: "Prayer request", Prompt: "I'd like to share a prayer request."},
		},
		Defaults: Defaults{
			BusinessProfile: bot.BusinessProfile{
				Type:        "church",
				Description: "Community church with Sunday services, midweek groups, and kids' ministry.",
				Hours:       "Sunday services 9am & 11am; office Mon-Thu 9am-4pm",
			},
			SystemPromptIntro: "You are the greeter assistant for a church. You help visitors find service times, plan a first visit, join groups, and share prayer requests. Be warm and unhurried, and never pressure anyone.",
			FAQs: []bot.FAQ{
				{Question: "What time are services?", Answer: "Sundays at 9am and 11am. Both services are identical; the 9am tends to be quieter."},
				{Question: "What should I wear?", Answer: "Come as you are. You'll see everything from jeans to jackets, and nobody minds either way."},
				{Question: "Is there something for my kids?", Answer: "Kids' ministry runs during both services for ages 6 months through 5th grade, with check-in opening 20 minutes early."},
				{Question: "How do I share a prayer request?", Answer: "You can share it right here and I'll pass it to the prayer team, or mark it private and only the pastors will see it."},
			},
			Personality: bot.Personality{Tone: "warm", Formality: 35},
			Theme:       bot.Theme{PrimaryColor: "#6d28d9", WelcomeMessage: "Welcome! Can I help you plan a visit or find a group?"},
		},
	},
	{
		ID:          "sober_living",
		Name:        "Sober Living & Recovery Housing",
		BotType:     "intake",
		Icon:        "heart",
		Description: "Intake assistant for sober living homes: availability, house rules, admissions, and family questions.",
		Booking: bot.BookingProfile{
			Mode:            bot.BookingInternal,
			PrimaryCTA:      "Ask about availability",
			SecondaryCTA:    "Admissions process",
			FailsafeEnabled: true,
		},
		CTAButtons: []bot.CTAButton{
			{ID: "availability", Label: "Ask about availability", Prompt: "Do you have any beds available?", IsPrimary: true},
			{ID: "admissions", Label: "Admissions process", Prompt: "What does the admissions process look like?"},
			{ID: "family", Label: "For family members", Prompt: "I'm asking for a family member. How can I help them get in?"},
		},
		Disclaimer: "This assistant provides housing program information only and is not a substitute for medical care, detox services, or professional treatment.",
		Defaults: Defaults{
			BusinessProfile: bot.BusinessProfile{
				Type:        "sober living home",
				Description: "Structured sober living residence with house managers, peer accountability, and recovery meeting requirements.",
				Hours:       "Intake line answered daily 8am-8pm",
			},
			SystemPromptIntro: "You are the intake assistant for a sober living home. You answer questions about availability, house rules, cost, and the admissions process for residents and their families. Be steady, non-judgmental, and direct. This is a safety-sensitive setting: when someone sounds like they are in danger, escalation comes before anything else.",
			FAQs: []bot.FAQ{
				{Question: "Do you have beds available?", Answer: "Availability changes weekly. Share your timeline and I'll have the intake coordinator call you today with current openings."},
				{Question: "What are the house rules?", Answer: "Core rules: total abstinence with testing, curfew, house meetings, chores, and attending recovery meetings weekly. The full agreement is reviewed at intake."},
				{Question: "How much does it cost?", Answer: "Rent is weekly and includes utilities. Exact rates depend on room type; the intake coordinator will go over costs and any move-in specials."},
				{Question: "Do I need to complete detox first?", Answer: "Yes. We're a recovery residence, not a medical facility, so residents need to be past withdrawal and medically stable before moving in."},
			},
			Personality: bot.Personality{Tone: "calm", Formality: 40},
			Theme:       bot.Theme{PrimaryColor: "#0f766e", WelcomeMessage: "Hi, I'm here to help with availability, rules, and admissions questions."},
		},
	},
}
