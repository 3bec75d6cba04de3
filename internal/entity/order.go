package entity

import (
	"strings"

	"github.com/orderdocs/order-extractor/constants"
)

// OrderFields is the fixed-shape record extracted from an order document.
// String fields default to "", numeric fields to 0; no field is ever absent.
type OrderFields struct {
	OrderNumber  string  `json:"orderNumber"`
	CustomerName string  `json:"customerName"`
	ProductCode  string  `json:"productCode"`
	ProductName  string  `json:"productName"`
	Material     string  `json:"material"`
	UnitWeight   float64 `json:"unitWeight"`
	Quantity     int     `json:"quantity"`
	OrderDate    string  `json:"orderDate"`
	DeliveryDate string  `json:"deliveryDate"`
	Notes        string  `json:"notes"`
}

// StringField returns the named string field, trimmed. Numeric and unknown
// fields return "".
func (f OrderFields) StringField(name string) string {
	switch name {
	case constants.FieldOrderNumber:
		return strings.TrimSpace(f.OrderNumber)
	case constants.FieldCustomerName:
		return strings.TrimSpace(f.CustomerName)
	case constants.FieldProductCode:
		return strings.TrimSpace(f.ProductCode)
	case constants.FieldProductName:
		return strings.TrimSpace(f.ProductName)
	case constants.FieldMaterial:
		return strings.TrimSpace(f.Material)
	case constants.FieldOrderDate:
		return strings.TrimSpace(f.OrderDate)
	case constants.FieldDeliveryDate:
		return strings.TrimSpace(f.DeliveryDate)
	case constants.FieldNotes:
		return strings.TrimSpace(f.Notes)
	}
	return ""
}

// SetStringField assigns a value to the named string field. Numeric fields
// are not settable through this path.
func (f *OrderFields) SetStringField(name, value string) {
	switch name {
	case constants.FieldOrderNumber:
		f.OrderNumber = value
	case constants.FieldCustomerName:
		f.CustomerName = value
	case constants.FieldProductCode:
		f.ProductCode = value
	case constants.FieldProductName:
		f.ProductName = value
	case constants.FieldMaterial:
		f.Material = value
	case constants.FieldOrderDate:
		f.OrderDate = value
	case constants.FieldDeliveryDate:
		f.DeliveryDate = value
	case constants.FieldNotes:
		f.Notes = value
	}
}

// ExtractionResult is an OrderFields record plus provenance metadata.
type ExtractionResult struct {
	Fields            OrderFields                `json:"fields"`
	DetectedFormat    string                     `json:"detected_format"`
	Confidence        int                        `json:"confidence"` // 0-100, meaningful on the generative path only
	Method            constants.ExtractionMethod `json:"extraction_method"`
	QualityScore      int                        `json:"quality_score"`
	QualityLevel      constants.QualityLevel     `json:"quality_level"`
	MatchedIndicators []string                   `json:"matched_indicators,omitempty"` // diagnostic trail from classification
}
