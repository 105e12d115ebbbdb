package extract

import "tradeos/internal/domain"

// BuildPrompt returns the mode-specific extraction prompt. Both prompts
// demand raw JSON so the response can be parsed and shape-validated
// directly; anything else counts as a provider failure.
func BuildPrompt(mode domain.ExtractMode) string {
	if mode == domain.ModeClient {
		return clientPrompt
	}
	return productPrompt
}

const productPrompt = `You are a product data extraction assistant for a trading company. Analyze the provided document (spreadsheet text, price list, catalog page, or photo) and extract EVERY product line item.

IMPORTANT INSTRUCTIONS:
- Extract ALL line items. Do not skip, summarize, or omit any rows.
- Spreadsheet text uses tab-separated columns; the first row of each sheet is usually a header row describing the columns.
- When a price is given without a currency, use "KRW".
- Numbers must be plain JSON numbers with no thousands separators or currency symbols.
- Korean product names and specs must be kept in Korean; do not translate.

Return ONLY valid JSON with no markdown formatting, no code fences, no explanation — just the raw JSON object.

The JSON object must follow this schema:
{
  "products": [
    {
      "name": "",
      "model": "",
      "specs": "",
      "price": 0,
      "currency": "KRW",
      "quantity": 0,
      "category": "",
      "manufacturer": "",
      "notes": ""
    }
  ]
}

"name" is required for every item. Omit or leave empty any other field not present in the document. If no products can be found, return {"products": []}.`

const clientPrompt = `You are a document data extraction assistant. The provided document is a Korean business registration certificate (사업자등록증) or a similar company document. Extract the company's registration fields.

IMPORTANT INSTRUCTIONS:
- "businessNo" is the 사업자등록번호 (format 000-00-00000). Do NOT confuse it with the 법인등록번호 (corporate registration number); if both appear, use the 사업자등록번호.
- "ceo" is the 대표자 (representative) name.
- "industry" is the 업태 field and "type" is the 종목 field.
- Keep all values in their original language; do not translate.

Return ONLY valid JSON with no markdown formatting, no code fences, no explanation — just the raw JSON object.

The JSON object must follow this schema:
{
  "clientName": "",
  "businessNo": "",
  "ceo": "",
  "address": "",
  "industry": "",
  "type": "",
  "email": "",
  "tel": "",
  "fax": ""
}

If a field is not present in the document, use an empty string.`
