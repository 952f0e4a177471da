package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Field names an operator-editable attribute of an Order. The string value is
// the canonical key used in persisted records and API payloads.
type Field string

const (
	FieldRequisitionID         Field = "requisition_id"
	FieldInternalOrderNumber   Field = "internal_order_number"
	FieldPurchaseOrderNumber   Field = "purchase_order_number"
	FieldPurchaseOrderDocument Field = "purchase_order_document"
	FieldLabelDocument         Field = "label_document"
	FieldPackageCount          Field = "package_count"
	FieldTotalWeight           Field = "total_weight"
	FieldDimensions            Field = "dimensions"
	FieldTrackingNumber        Field = "tracking_number"
	FieldSupplierEmail         Field = "supplier_email"
	FieldOfferDocument         Field = "offer_document"
	FieldOrderNumber           Field = "order_number"
)

// FieldKind tells how a field's raw text is parsed and when it counts as filled.
type FieldKind int

const (
	// KindText fields are filled when non-empty after trimming whitespace.
	KindText FieldKind = iota
	// KindInteger fields are filled when greater than zero.
	KindInteger
	// KindDecimal fields are filled when greater than zero.
	KindDecimal
)

type fieldInfo struct {
	kind  FieldKind
	label string
}

func getFieldInfo() map[Field]fieldInfo {
	return map[Field]fieldInfo{
		FieldSupplierEmail:         {KindText, "Supplier email"},
		FieldOfferDocument:         {KindText, "Offer document"},
		FieldOrderNumber:           {KindText, "Order number"},
		FieldRequisitionID:         {KindText, "Requisition ID"},
		FieldInternalOrderNumber:   {KindInteger, "Internal order number"},
		FieldPurchaseOrderNumber:   {KindText, "Purchase order number"},
		FieldPurchaseOrderDocument: {KindText, "Purchase order document"},
		FieldLabelDocument:         {KindText, "Label document"},
		FieldPackageCount:          {KindInteger, "Package count"},
		FieldTotalWeight:           {KindDecimal, "Total weight"},
		FieldDimensions:            {KindText, "Dimensions"},
		FieldTrackingNumber:        {KindText, "Tracking number"},
	}
}

// EditableFields returns every field an operator may edit, in form order.
func EditableFields() []Field {
	return []Field{
		FieldSupplierEmail,
		FieldOfferDocument,
		FieldOrderNumber,
		FieldRequisitionID,
		FieldInternalOrderNumber,
		FieldPurchaseOrderNumber,
		FieldPurchaseOrderDocument,
		FieldLabelDocument,
		FieldPackageCount,
		FieldTotalWeight,
		FieldDimensions,
		FieldTrackingNumber,
	}
}

// ParseField resolves a canonical field key such as "package_count".
func ParseField(name string) (Field, error) {
	f := Field(name)
	if _, ok := getFieldInfo()[f]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("field", fmt.Errorf("%q is not an editable field", name))
	}
	return f, nil
}

// Kind returns how the field is parsed. Unknown fields are treated as text.
func (f Field) Kind() FieldKind {
	return getFieldInfo()[f].kind
}

// Label returns a human readable name for forms.
func (f Field) Label() string {
	if info, ok := getFieldInfo()[f]; ok {
		return info.label
	}
	return string(f)
}

func (f Field) String() string {
	return string(f)
}
