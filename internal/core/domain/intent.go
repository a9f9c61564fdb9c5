package domain

import "strings"

// Intent is a coarse category of customer request, used to select a
// response template.
type Intent string

const (
	IntentRefund         Intent = "refund"
	IntentQuotation      Intent = "quotation"
	IntentLatestProducts Intent = "latest_products"
	IntentLiveAgent      Intent = "live_agent"
	IntentDefault        Intent = "default"
)

// IntentRule maps a set of trigger keywords to an intent. A rule matches
// when any keyword appears in the query text (case-insensitive substring).
type IntentRule struct {
	Keywords []string
	Intent   Intent
}

// intentRules is evaluated in order, first match wins. The order is part
// of the contract: "I want a refund, what is the price" is a refund, not
// a quotation.
var intentRules = []IntentRule{
	{Keywords: []string{"damaged", "refund"}, Intent: IntentRefund},
	{Keywords: []string{"quotation", "price"}, Intent: IntentQuotation},
	{Keywords: []string{"latest"}, Intent: IntentLatestProducts},
	{Keywords: []string{"live agent", "talk to someone"}, Intent: IntentLiveAgent},
}

// ClassifyIntent matches the query text against the ordered rule list.
// Classification never fails; queries matching no rule are IntentDefault.
func ClassifyIntent(query string) Intent {
	lower := strings.ToLower(query)
	for _, rule := range intentRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Intent
			}
		}
	}
	return IntentDefault
}

// Rules returns a copy of the ordered rule list, for display and tests.
func Rules() []IntentRule {
	out := make([]IntentRule, len(intentRules))
	copy(out, intentRules)
	return out
}
