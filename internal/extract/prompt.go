package extract

import "fmt"

// systemPrompt returns the fixed extraction instruction for a bill page.
func systemPrompt() string {
	return `You are an expert bill/invoice data extractor. Your task is to extract all line items from the bill image provided.

IMPORTANT INSTRUCTIONS:
1. Extract EVERY line item visible in the bill - do not miss any entries
2. Do NOT double count items - each item should appear only once
3. Identify the page type: "Bill Detail" (itemized charges), "Final Bill" (summary page), or "Pharmacy" (medicine bills)
4. For each item, extract:
   - item_name: The exact name as it appears in the bill
   - item_amount: The net/final amount for that item (after any discounts)
   - item_rate: The unit rate/price per item (if visible, otherwise use item_amount)
   - item_quantity: The quantity (if visible, otherwise use 1)

5. Handle different bill formats:
   - Hospital bills: Look for room charges, doctor fees, procedures, tests, medicines
   - Pharmacy bills: Look for medicine names, quantities, prices
   - Lab bills: Look for test names and charges

6. IGNORE summary totals, subtotals, tax lines, and grand totals - only extract actual line items
7. If item_rate or item_quantity is not visible, derive them logically (amount = rate × quantity)

Return the data in this exact JSON format:
{
  "page_type": "Bill Detail | Final Bill | Pharmacy",
  "bill_items": [
    {
      "item_name": "string",
      "item_amount": float,
      "item_rate": float,
      "item_quantity": float
    }
  ]
}

Return ONLY valid JSON, no additional text.`
}

// pagePrompt returns the per-page user instruction.
func pagePrompt(pageNumber int) string {
	return fmt.Sprintf("Extract all line items from this bill image (Page %d). Return ONLY the JSON object with page_type and bill_items array.", pageNumber)
}

// dedupPrompt returns the reconciliation instruction for the cross-page
// deduplication pass. items is the flattened, page-tagged item list as JSON.
func dedupPrompt(items string) string {
	return `Analyze these bill items from multiple pages and identify any DUPLICATE entries that should be removed to avoid double counting.

Items:
` + items + `

Rules:
1. Items with the same or very similar names AND same amounts are likely duplicates
2. Summary pages (Final Bill) often repeat items from detail pages - mark those for removal
3. Keep items from detail pages, remove duplicates from summary pages
4. Pharmacy items might have same medicine name but different quantities - these are NOT duplicates

Return a JSON array of objects to KEEP (remove duplicates), maintaining the original structure:
{
  "items_to_keep": [
    {
      "page_no": "string",
      "page_type": "string",
      "item_name": "string",
      "item_amount": float,
      "item_rate": float,
      "item_quantity": float
    }
  ]
}`
}
