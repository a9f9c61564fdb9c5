package domain

import (
	"fmt"
	"strings"
	"time"
)

// Product dataset column names, as they appear in uploaded files.
const (
	ColumnModel          = "model"
	ColumnPrice          = "price"
	ColumnProcessorBrand = "processor_brand"
	ColumnNumCores       = "num_cores"
	ColumnRAMCapacity    = "ram_capacity"
	ColumnInternalMemory = "internal_memory"
	ColumnBrandName      = "brand_name"
)

// PDFDocumentID is the fixed id under which an uploaded PDF is stored.
// A PDF upload produces exactly one document.
const PDFDocumentID = "pdf_upload"

// ProductRecord is one validated row of a product dataset.
// All fields are required; values are kept as uploaded strings since the
// description is assembled by concatenation, not arithmetic.
type ProductRecord struct {
	Model          string
	Price          string
	ProcessorBrand string
	NumCores       string
	RAMCapacity    string
	InternalMemory string

	// BrandName doubles as the document id. Distinct models sharing a
	// brand name overwrite each other; the ingest report counts these.
	BrandName string
}

// ProductFromRow builds a ProductRecord from a spreadsheet row.
// Returns ErrMissingField (wrapped with the field name) if any required
// column is absent or blank.
func ProductFromRow(row Row) (ProductRecord, error) {
	fields := []string{
		ColumnModel, ColumnPrice, ColumnProcessorBrand, ColumnNumCores,
		ColumnRAMCapacity, ColumnInternalMemory, ColumnBrandName,
	}
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		v := strings.TrimSpace(row[f])
		if v == "" {
			return ProductRecord{}, fmt.Errorf("%w: %s", ErrMissingField, f)
		}
		values[f] = v
	}
	return ProductRecord{
		Model:          values[ColumnModel],
		Price:          values[ColumnPrice],
		ProcessorBrand: values[ColumnProcessorBrand],
		NumCores:       values[ColumnNumCores],
		RAMCapacity:    values[ColumnRAMCapacity],
		InternalMemory: values[ColumnInternalMemory],
		BrandName:      values[ColumnBrandName],
	}, nil
}

// Describe assembles the canonical one-sentence description stored in the
// product collection, e.g.
// "iPhone 11 - ₹39999, Bionic 6 cores, 4GB RAM, 64GB Storage".
func (p ProductRecord) Describe() string {
	return fmt.Sprintf("%s - ₹%s, %s %s cores, %sGB RAM, %sGB Storage",
		p.Model, p.Price, p.ProcessorBrand, p.NumCores, p.RAMCapacity, p.InternalMemory)
}

// Document converts the record into its stored form.
func (p ProductRecord) Document(now time.Time) Document {
	return Document{
		ID:         p.BrandName,
		Collection: CollectionProducts,
		Text:       p.Describe(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ProductListing is the display form of a stored product, split back out
// of the description text for catalog listings.
type ProductListing struct {
	ID    string
	Name  string
	Price string
}

// ListingFromDocument splits "name - ₹price, ..." into display fields.
// Documents that do not follow the description format (PDF uploads) keep
// the full text as the name with no price.
func ListingFromDocument(doc Document) ProductListing {
	name, rest, ok := strings.Cut(doc.Text, " - ₹")
	if !ok {
		return ProductListing{ID: doc.ID, Name: doc.Text}
	}
	price, _, _ := strings.Cut(rest, ",")
	return ProductListing{ID: doc.ID, Name: name, Price: "₹" + price}
}
