package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProductRow() Row {
	return Row{
		ColumnModel:          "iPhone 11",
		ColumnPrice:          "39999",
		ColumnProcessorBrand: "Bionic",
		ColumnNumCores:       "6",
		ColumnRAMCapacity:    "4",
		ColumnInternalMemory: "64",
		ColumnBrandName:      "Apple",
	}
}

func TestProductFromRow_Success(t *testing.T) {
	record, err := ProductFromRow(validProductRow())
	require.NoError(t, err)

	assert.Equal(t, "iPhone 11", record.Model)
	assert.Equal(t, "Apple", record.BrandName)
}

func TestProductFromRow_MissingField(t *testing.T) {
	row := validProductRow()
	delete(row, ColumnPrice)

	_, err := ProductFromRow(row)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), ColumnPrice)
}

func TestProductFromRow_BlankFieldIsMissing(t *testing.T) {
	row := validProductRow()
	row[ColumnBrandName] = "   "

	_, err := ProductFromRow(row)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestProductRecord_Describe(t *testing.T) {
	record, err := ProductFromRow(validProductRow())
	require.NoError(t, err)

	assert.Equal(t, "iPhone 11 - ₹39999, Bionic 6 cores, 4GB RAM, 64GB Storage", record.Describe())
}

func TestProductRecord_Document(t *testing.T) {
	record, err := ProductFromRow(validProductRow())
	require.NoError(t, err)

	now := time.Now().UTC()
	doc := record.Document(now)

	assert.Equal(t, "Apple", doc.ID)
	assert.Equal(t, CollectionProducts, doc.Collection)
	assert.Equal(t, record.Describe(), doc.Text)
	assert.Equal(t, now, doc.CreatedAt)
}

func TestListingFromDocument_ProductText(t *testing.T) {
	listing := ListingFromDocument(Document{
		ID:   "Apple",
		Text: "iPhone 11 - ₹39999, Bionic 6 cores, 4GB RAM, 64GB Storage",
	})

	assert.Equal(t, "Apple", listing.ID)
	assert.Equal(t, "iPhone 11", listing.Name)
	assert.Equal(t, "₹39999", listing.Price)
}

func TestListingFromDocument_FreeText(t *testing.T) {
	listing := ListingFromDocument(Document{
		ID:   PDFDocumentID,
		Text: "full text of an uploaded brochure",
	})

	assert.Equal(t, PDFDocumentID, listing.ID)
	assert.Equal(t, "full text of an uploaded brochure", listing.Name)
	assert.Empty(t, listing.Price)
}
