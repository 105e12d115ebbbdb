package domain

// ParsedFile is the normalized output of local file parsing.
type ParsedFile struct {
	Text   string   `json:"text"`
	Images []string `json:"images"`
	Type   FileType `json:"type"`
}

// ImagePart is a unit of binary evidence sent to an extraction provider.
type ImagePart struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

// ProductData is one extracted catalog line item.
type ProductData struct {
	Name         string   `json:"name"`
	Model        string   `json:"model,omitempty"`
	Specs        string   `json:"specs,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Currency     string   `json:"currency,omitempty"`
	Quantity     *float64 `json:"quantity,omitempty"`
	Category     string   `json:"category,omitempty"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	Image        string   `json:"image,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

// ClientData is one extracted business-registration record.
type ClientData struct {
	ClientName string `json:"clientName"`
	BusinessNo string `json:"businessNo"`
	CEO        string `json:"ceo"`
	Address    string `json:"address"`
	Industry   string `json:"industry"`
	Type       string `json:"type"`
	Email      string `json:"email,omitempty"`
	Tel        string `json:"tel,omitempty"`
	Fax        string `json:"fax,omitempty"`
}

// Empty reports whether the record carries none of the identifying fields.
// An all-empty record counts as a failed extraction even when the provider
// returned without error.
func (c *ClientData) Empty() bool {
	return c.ClientName == "" && c.BusinessNo == "" && c.CEO == ""
}

// AnalysisResult is the envelope returned for product extraction.
type AnalysisResult struct {
	Products   []ProductData `json:"products"`
	Source     Source        `json:"source"`
	Confidence float64       `json:"confidence"`
	Warnings   []string      `json:"warnings,omitempty"`
}

// CatalogProduct is an existing catalog record as supplied by the catalog
// collaborator. Only Name participates in duplicate matching.
type CatalogProduct struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Model string `json:"model,omitempty"`
}

// StoredFile is the storage collaborator's result for an uploaded binary.
type StoredFile struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}
