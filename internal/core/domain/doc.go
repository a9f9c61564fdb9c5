// Package domain contains the core business types for deskmate:
// stored documents, product records, customer queries, intent
// classification rules and response templates.
//
// Types here have no dependencies on adapters or infrastructure.
package domain
