package order

import (
	"fmt"
	"strconv"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// CanAdvance reports whether every field required by the current state is filled.
//
// A text field is filled when it is non-empty after trimming whitespace; a
// numeric field is filled when it is greater than zero. States without
// requirements always report true. CanAdvance never modifies the order.
func (o *Order) CanAdvance() bool {
	return len(o.MissingFields()) == 0
}

// MissingFields lists the required fields of the current state that are not
// filled, in the order RequiredFields declares them.
//
// Example:
//
//	// order in OrderDraft with only the requisition id set
//	o.MissingFields() // [internal_order_number]
func (o *Order) MissingFields() []Field {
	missing := make([]Field, 0)
	for _, f := range o.state.RequiredFields() {
		if !o.isFilled(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

func (o *Order) isFilled(f Field) bool {
	switch f.Kind() {
	case KindInteger:
		return o.intField(f) > 0
	case KindDecimal:
		return o.totalWeight > 0
	default:
		return strings.TrimSpace(o.textField(f)) != ""
	}
}

// FieldValue renders the current value of f as text. Unset numbers render as "".
func (o *Order) FieldValue(f Field) string {
	switch f.Kind() {
	case KindInteger:
		if v := o.intField(f); v != 0 {
			return strconv.Itoa(v)
		}
		return ""
	case KindDecimal:
		if o.totalWeight != 0 {
			return strconv.FormatFloat(o.totalWeight, 'f', -1, 64)
		}
		return ""
	default:
		return o.textField(f)
	}
}

// SetField parses raw operator input and stores it in f.
//
// Text is stored trimmed. Numbers are parsed from their decimal form; an
// empty input clears a numeric field back to zero.
//
// Returns:
//   - nil on success
//   - ValueIsInvalidError when f is not editable or raw is not a number
//   - ValueIsOutOfRangeError when a number is negative
func (o *Order) SetField(f Field, raw string) error {
	raw = strings.TrimSpace(raw)

	switch f.Kind() {
	case KindInteger:
		v := 0
		if raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return errs.NewValueIsInvalidErrorWithCause(string(f), fmt.Errorf("%q is not a whole number", raw))
			}
			v = parsed
		}
		return o.setIntField(f, v)
	case KindDecimal:
		v := 0.0
		if raw != "" {
			parsed, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
			if err != nil {
				return errs.NewValueIsInvalidErrorWithCause(string(f), fmt.Errorf("%q is not a number", raw))
			}
			v = parsed
		}
		return o.SetTotalWeight(v)
	}

	switch f {
	case FieldSupplierEmail:
		o.SetSupplierEmail(raw)
	case FieldOfferDocument:
		o.SetOfferDocument(raw)
	case FieldOrderNumber:
		o.SetOrderNumber(raw)
	case FieldRequisitionID:
		o.SetRequisitionID(raw)
	case FieldPurchaseOrderNumber:
		o.SetPurchaseOrderNumber(raw)
	case FieldPurchaseOrderDocument:
		o.SetPurchaseOrderDocument(raw)
	case FieldLabelDocument:
		o.SetLabelDocument(raw)
	case FieldDimensions:
		o.SetDimensions(raw)
	case FieldTrackingNumber:
		o.SetTrackingNumber(raw)
	default:
		return errs.NewValueIsInvalidErrorWithCause("field", fmt.Errorf("%q is not an editable field", string(f)))
	}
	return nil
}

func (o *Order) intField(f Field) int {
	if f == FieldPackageCount {
		return o.packageCount
	}
	return o.internalOrderNumber
}

func (o *Order) setIntField(f Field, v int) error {
	if f == FieldPackageCount {
		return o.SetPackageCount(v)
	}
	return o.SetInternalOrderNumber(v)
}

func (o *Order) textField(f Field) string {
	//nolint:exhaustive // numeric fields are handled by the callers
	switch f {
	case FieldSupplierEmail:
		return o.supplierEmail
	case FieldOfferDocument:
		return o.offerDocument
	case FieldOrderNumber:
		return o.orderNumber
	case FieldRequisitionID:
		return o.requisitionID
	case FieldPurchaseOrderNumber:
		return o.purchaseOrderNumber
	case FieldPurchaseOrderDocument:
		return o.purchaseOrderDocument
	case FieldLabelDocument:
		return o.labelDocument
	case FieldDimensions:
		return o.dimensions
	case FieldTrackingNumber:
		return o.trackingNumber
	default:
		return ""
	}
}
