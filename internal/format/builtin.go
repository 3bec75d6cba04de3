package format

import "github.com/orderdocs/order-extractor/constants"

// Builtins returns the partner formats compiled into the binary. Additional
// formats are data: they come from a YAML file (LoadFormatsFile) or from the
// persisted custom pattern blob, no deployment required.
func Builtins() []FormatDefinition {
	return []FormatDefinition{
		{
			ID:       "COMPANY_A",
			Name:     "A株式会社 発注書",
			Priority: 10,
			Indicators: []string{
				`A株式会社`,
				`発注書.*A-[0-9]+`,
			},
			FieldPatterns: map[string][]FieldPattern{
				constants.FieldOrderNumber: {
					{Pattern: `発注番号[:：]?\s*(A-[0-9０-９]+)`},
					{Pattern: `発注書\s*(A-[0-9０-９]+)`},
				},
				constants.FieldCustomerName: {
					{Pattern: `(A株式会社)`},
				},
				constants.FieldProductCode: {
					{Pattern: `品番[:：]?\s*([A-Za-z0-9０-９][A-Za-z0-9０-９\-]*)`},
				},
				constants.FieldProductName: {
					{Pattern: `品名[:：]?\s*([^\s]+)`},
				},
				constants.FieldMaterial: {
					{Pattern: `材質[:：]?\s*([^\s]+)`},
				},
				constants.FieldUnitWeight: {
					{Pattern: `単重[:：]?\s*([0-9０-９]+(?:[.．][0-9０-９]+)?)`},
				},
				constants.FieldQuantity: {
					{Pattern: `数量[:：]?\s*([0-9０-９,，]+)`},
				},
				constants.FieldOrderDate: {
					{Pattern: `発注日[:：]?\s*([0-9０-９]{4}[/年.-][0-9０-９]{1,2}[/月.-][0-9０-９]{1,2}日?)`},
				},
				constants.FieldDeliveryDate: {
					{Pattern: `納期[:：]?\s*([0-9０-９]{4}[/年.-][0-9０-９]{1,2}[/月.-][0-9０-９]{1,2}日?)`},
				},
			},
		},
		{
			ID:       "COMPANY_B",
			Name:     "B工業 注文書",
			Priority: 8,
			Indicators: []string{
				`B工業`,
				`注文書`,
				`注文No[.．]?`,
			},
			FieldPatterns: map[string][]FieldPattern{
				constants.FieldOrderNumber: {
					{Pattern: `注文No[.．]?[:：]?\s*([A-Za-z0-9０-９\-]+)`},
					{Pattern: `注文番号[:：]?\s*([A-Za-z0-9０-９\-]+)`},
				},
				constants.FieldCustomerName: {
					{Pattern: `(B工業(?:株式会社)?)`},
					{Pattern: `客先[:：]?\s*([^\s]+)`},
				},
				constants.FieldProductCode: {
					{Pattern: `コード[:：]?\s*([A-Za-z0-9０-９\-]+)`},
					{Pattern: `品番[:：]?\s*([A-Za-z0-9０-９\-]+)`},
				},
				constants.FieldProductName: {
					{Pattern: `品名[:：]?\s*([^\s]+)`},
					{Pattern: `製品名[:：]?\s*([^\s]+)`},
				},
				constants.FieldMaterial: {
					{Pattern: `材料[:：]?\s*([^\s]+)`},
					{Pattern: `材質[:：]?\s*([^\s]+)`},
				},
				constants.FieldUnitWeight: {
					{Pattern: `単位重量[:：]?\s*([0-9０-９]+(?:[.．][0-9０-９]+)?)`},
					{Pattern: `単重[:：]?\s*([0-9０-９]+(?:[.．][0-9０-９]+)?)`},
				},
				constants.FieldQuantity: {
					{Pattern: `数量[:：]?\s*([0-9０-９,，]+)\s*(?:個|ヶ|pcs)?`},
				},
				constants.FieldOrderDate: {
					{Pattern: `注文日[:：]?\s*([0-9０-９]{4}[/年.-][0-9０-９]{1,2}[/月.-][0-9０-９]{1,2}日?)`},
				},
				constants.FieldDeliveryDate: {
					{Pattern: `納入日[:：]?\s*([0-9０-９]{4}[/年.-][0-9０-９]{1,2}[/月.-][0-9０-９]{1,2}日?)`},
					{Pattern: `納期[:：]?\s*([0-9０-９]{4}[/年.-][0-9０-９]{1,2}[/月.-][0-9０-９]{1,2}日?)`},
				},
			},
		},
		{
			ID:       "COMPANY_C",
			Name:     "C Trading order sheet",
			Priority: 8,
			Indicators: []string{
				`C\s*Trading`,
				`ORDER\s+SHEET`,
			},
			FieldPatterns: map[string][]FieldPattern{
				constants.FieldOrderNumber: {
					{Pattern: `Order\s*No[.:]?\s*([A-Z0-9\-]+)`},
					{Pattern: `PO[#:]?\s*([A-Z0-9\-]+)`},
				},
				constants.FieldCustomerName: {
					{Pattern: `Customer[.:]?\s*(.+)`},
					{Pattern: `(C\s*Trading\s*(?:Co\.,?\s*Ltd\.?)?)`},
				},
				constants.FieldProductCode: {
					{Pattern: `Part\s*No[.:]?\s*([A-Z0-9\-]+)`},
					{Pattern: `Item\s*Code[.:]?\s*([A-Z0-9\-]+)`},
				},
				constants.FieldProductName: {
					{Pattern: `Description[.:]?\s*(.+)`},
					{Pattern: `Item[.:]?\s*(.+)`},
				},
				constants.FieldMaterial: {
					{Pattern: `Material[.:]?\s*([^\s]+)`},
				},
				constants.FieldUnitWeight: {
					{Pattern: `Unit\s*Weight[.:]?\s*([0-9]+(?:\.[0-9]+)?)`},
				},
				constants.FieldQuantity: {
					{Pattern: `Q(?:uantity|ty)[.:]?\s*([0-9,]+)`},
				},
				constants.FieldOrderDate: {
					{Pattern: `Order\s*Date[.:]?\s*([0-9]{4}[/-][0-9]{1,2}[/-][0-9]{1,2})`},
				},
				constants.FieldDeliveryDate: {
					{Pattern: `Delivery\s*(?:Date)?[.:]?\s*([0-9]{4}[/-][0-9]{1,2}[/-][0-9]{1,2})`},
				},
			},
		},
	}
}

// RegisterBuiltins registers every built-in format, stopping on the first
// failure. Built-ins are expected to compile; an error here is a programming
// mistake surfaced at startup.
func RegisterBuiltins(r *Registry) error {
	for _, def := range Builtins() {
		if err := r.Register(def); err != nil {
			return err
		}
	}
	return nil
}
