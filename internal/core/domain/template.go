package domain

import "strings"

// NoMatchMessage is the sentinel answer for retrieval against an empty
// collection. It is a valid end-user answer, not an error.
const NoMatchMessage = "No relevant information found. Please refine your query."

// ResponseTemplate is a static message body selected by intent.
// Templates are compiled at request time and never persisted.
type ResponseTemplate struct {
	Intent  Intent
	Subject string

	// body may contain the {{product}} placeholder, replaced at render
	// time with the retrieved document text.
	body string
}

// Render produces the final plain-text body. retrieved is the nearest
// stored document's text; templates without a placeholder ignore it.
func (t ResponseTemplate) Render(retrieved string) string {
	if retrieved == "" {
		retrieved = fallbackProductLine
	}
	return strings.ReplaceAll(t.body, productPlaceholder, retrieved)
}

// TemplateFor returns the response template for an intent. Unknown
// intents fall through to the default template.
func TemplateFor(intent Intent) ResponseTemplate {
	if t, ok := templates[intent]; ok {
		return t
	}
	return templates[IntentDefault]
}

const productPlaceholder = "{{product}}"

// fallbackProductLine stands in for the retrieved text when the product
// collection is empty.
const fallbackProductLine = "Apple iPhone 11 - Bionic 6 cores, 4GB RAM, 64GB Storage"

var templates = map[Intent]ResponseTemplate{
	IntentRefund: {
		Intent:  IntentRefund,
		Subject: "Query Response - Product Refund Request",
		body: `Dear Customer,

Thank you for reaching out to us regarding your recent order.

We sincerely apologize for the inconvenience caused by receiving a damaged product. We understand your concern and would like to assist you with the refund process.

To initiate the refund, please contact our customer support team at support@yourcompany.com or call us at 1-800-123-4567, and we will provide further instructions on how to return the item and process your refund.

If you have any further questions or require assistance, please don't hesitate to reach out. We are here to help!

Best regards,
Customer Support Team`,
	},
	IntentQuotation: {
		Intent:  IntentQuotation,
		Subject: "Product Quotation",
		body: `Dear Customer,

Thank you for reaching out to us. Below is the quotation for the product you requested.

We are also offering a 10% discount on your next purchase. Simply use the code DISCOUNT10 at checkout.

Additionally, we have a wide variety of products in our catalog:

- Apple iPhone 12 - ₹59,999
- Samsung Galaxy S21 - ₹49,999
- OnePlus 9 Pro - ₹64,999

You can view all our latest products at https://www.yourcompany.com/products.

If you have any more questions or need further details, feel free to ask!

Best regards,
Customer Support Team`,
	},
	IntentLatestProducts: {
		Intent:  IntentLatestProducts,
		Subject: "Latest Product Information",
		body: `Dear Customer,

Thank you for your interest in our latest products. Here are some of our newest arrivals:

- Apple iPhone 13 Pro - ₹1,19,999
- Samsung Galaxy Z Fold 3 - ₹1,49,999
- OnePlus 10 Pro - ₹74,999

You can explore more about these products at https://www.yourcompany.com/new-arrivals.

If you would like more details or have any other questions, please feel free to contact us.

Best regards,
Customer Support Team`,
	},
	IntentLiveAgent: {
		Intent:  IntentLiveAgent,
		Subject: "Contacting a Live Agent",
		body: `Dear Customer,

Thank you for reaching out to us. We understand that you may have specific questions or need assistance. You can easily get in touch with our live agent for immediate help.

Please reach us via the following channels:
- Live Chat: visit https://www.yourcompany.com/chat and click on the live chat option.
- Phone Support: call us at 1-800-123-4567 for real-time assistance.

We are here to help you with all your inquiries.

Best regards,
Customer Support Team`,
	},
	IntentDefault: {
		Intent:  IntentDefault,
		Subject: "Query Response",
		body: `Dear Customer,

Thank you for contacting us regarding your query.

We found the following product information based on your query:

{{product}}

If you have any more questions or need additional information, feel free to ask.

Best regards,
Customer Support Team`,
	},
}
