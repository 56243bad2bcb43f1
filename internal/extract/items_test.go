package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"billex/internal/domain"
)

func TestNormalizeItem_StringNumbers(t *testing.T) {
	item := normalizeItem(map[string]interface{}{
		"item_name":     "Paracetamol 500mg",
		"item_amount":   "12.5",
		"item_quantity": "abc",
	})

	assert.Equal(t, domain.BillItem{
		ItemName:     "Paracetamol 500mg",
		ItemAmount:   12.5,
		ItemRate:     12.5, // falls back to amount
		ItemQuantity: 1,    // unparseable defaults to 1
	}, item)
}

func TestNormalizeItem_AllFieldsPresent(t *testing.T) {
	item := normalizeItem(map[string]interface{}{
		"item_name":     "Room Charges",
		"item_amount":   3000.0,
		"item_rate":     1500.0,
		"item_quantity": 2.0,
	})

	assert.Equal(t, domain.BillItem{
		ItemName:     "Room Charges",
		ItemAmount:   3000,
		ItemRate:     1500,
		ItemQuantity: 2,
	}, item)
}

func TestNormalizeItem_Empty(t *testing.T) {
	item := normalizeItem(map[string]interface{}{})

	assert.Equal(t, domain.BillItem{
		ItemName:     "",
		ItemAmount:   0,
		ItemRate:     0,
		ItemQuantity: 1,
	}, item)
}

func TestNormalizeItem_NumericName(t *testing.T) {
	item := normalizeItem(map[string]interface{}{
		"item_name":   42.0,
		"item_amount": 10.0,
	})

	assert.Equal(t, "42", item.ItemName)
	assert.Equal(t, 10.0, item.ItemRate)
}

func TestItemNumber(t *testing.T) {
	assert.Equal(t, 7.5, itemNumber(7.5))
	assert.Equal(t, 7.5, itemNumber(" 7.5 "))
	assert.Equal(t, 0.0, itemNumber("n/a"))
	assert.Equal(t, 0.0, itemNumber(nil))
	assert.Equal(t, 0.0, itemNumber(true))
}
