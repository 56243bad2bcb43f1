package extract

import (
	"strconv"
	"strings"

	"billex/internal/domain"
)

// normalizeItem coerces a model-emitted item into the fixed schema. Missing
// or unparseable fields take their defaults rather than failing: amount 0,
// rate falls back to amount, quantity 1.
func normalizeItem(fields map[string]interface{}) domain.BillItem {
	amount := itemNumber(fields["item_amount"])
	rate := itemNumber(fields["item_rate"])
	if rate == 0 {
		rate = amount
	}
	quantity := itemNumber(fields["item_quantity"])
	if quantity == 0 {
		quantity = 1
	}
	return domain.BillItem{
		ItemName:     itemName(fields["item_name"]),
		ItemAmount:   amount,
		ItemRate:     rate,
		ItemQuantity: quantity,
	}
}

func itemName(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// itemNumber converts a loosely typed numeric field to a float, returning 0
// when the value is absent or unparseable.
func itemNumber(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
