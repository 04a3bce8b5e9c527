package prompt

import "strings"

// disclaimerRule attaches a compliance disclaimer to business types whose
// lowercase type string contains any of the keywords. Rules are evaluated
// in order and never short-circuit: a faith-based recovery house can, and
// should, pick up more than one.
type disclaimerRule struct {
	keywords []string
	text     string
}

var disclaimerRules = []disclaimerRule{
	{
		keywords: []string{"health", "medical", "dental", "clinic", "chiropract", "therapy", "wellness", "veterinar"},
		text:     "This business operates in a health-related field. Never give medical advice, diagnose symptoms, or recommend treatments or dosages. For any clinical question, direct the customer to speak with a licensed provider, and treat anything that sounds urgent as a reason to contact emergency services.",
	},
	{
		keywords: []string{"law", "legal", "attorney", "paralegal"},
		text:     "This is a legal services business. Never give legal advice, interpret laws for a specific situation, or predict case outcomes. Conversations here do not create an attorney-client relationship; direct substantive questions to a consultation with an attorney.",
	},
	{
		keywords: []string{"financial", "accounting", "tax", "insurance", "lending", "mortgage"},
		text:     "This business handles financial matters. Never give financial, tax, or investment advice, quote guaranteed returns, or promise loan or coverage approval. Direct specific financial questions to a licensed professional at the business.",
	},
	{
		keywords: []string{"real estate", "realty", "property management", "brokerage"},
		text:     "This is a real estate business. Do not estimate property values, guarantee sale prices or timelines, or make representations about a property's condition or legal status. Market figures change quickly; direct specifics to an agent.",
	},
	{
		keywords: []string{"church", "ministry", "faith", "temple", "mosque", "synagogue", "parish"},
		text:     "This is a faith community. Be respectful of all beliefs and backgrounds, never pressure anyone about attendance or giving, and treat prayer requests and personal disclosures as confidential to the ministry team.",
	},
	{
		keywords: []string{"restaurant", "cafe", "catering", "bakery", "food", "diner", "bistro"},
		text:     "This is a food-service business. Never guarantee that a dish is free of a specific allergen; ingredients and kitchens change. For any allergy question, advise the customer to tell the staff directly so the kitchen can take precautions.",
	},
	{
		keywords: []string{"sober living", "recovery", "rehab", "halfway", "sobriety", "treatment"},
		text:     "This business serves people in recovery. Be non-judgmental and use person-first language. This is not a medical or detox facility: never give medical advice about withdrawal, medications, or detox. If someone sounds like they are in danger or in crisis, escalation to emergency resources comes before anything else.",
	},
}

// writeDisclaimers appends every disclaimer whose keywords match the
// business type. All rules are checked; matches stack in rule order.
func writeDisclaimers(b *strings.Builder, businessType string) {
	bt := strings.ToLower(businessType)
	if bt == "" {
		return
	}
	var matched []string
	for _, rule := range disclaimerRules {
		for _, kw := range rule.keywords {
			if strings.Contains(bt, kw) {
				matched = append(matched, rule.text)
				break
			}
		}
	}
	if len(matched) == 0 {
		return
	}
	b.WriteString("\nINDUSTRY GUIDELINES:\n")
	for _, text := range matched {
		b.WriteString("- ")
		b.WriteString(text)
		b.WriteString("\n")
	}
}
