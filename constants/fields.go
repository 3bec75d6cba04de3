package constants

// Canonical field names of an order record. These match the JSON keys used in
// prompts, persisted corrections, and format pattern files.
const (
	FieldOrderNumber  = "orderNumber"
	FieldCustomerName = "customerName"
	FieldProductCode  = "productCode"
	FieldProductName  = "productName"
	FieldMaterial     = "material"
	FieldUnitWeight   = "unitWeight"
	FieldQuantity     = "quantity"
	FieldOrderDate    = "orderDate"
	FieldDeliveryDate = "deliveryDate"
	FieldNotes        = "notes"
)

// AllFields lists every extractable field in canonical order.
var AllFields = []string{
	FieldOrderNumber,
	FieldCustomerName,
	FieldProductCode,
	FieldProductName,
	FieldMaterial,
	FieldUnitWeight,
	FieldQuantity,
	FieldOrderDate,
	FieldDeliveryDate,
	FieldNotes,
}

// EssentialFields is the subset that gates extraction quality. Dates, weight,
// and quantity are frequently absent on preliminary documents and do not gate.
var EssentialFields = []string{
	FieldOrderNumber,
	FieldCustomerName,
	FieldProductCode,
	FieldProductName,
	FieldMaterial,
}
