package entity

// DescriptionTab marks a completion that refers to an already open tab.
const DescriptionTab = "tab"

// Completion is one candidate result returned by a completion provider.
// A result set is immutable once delivered.
type Completion struct {
	URL                 string `json:"url"`
	DisplayMarkup       string `json:"html,omitempty"`
	InsertText          string `json:"insertText,omitempty"`
	AutoSelect          bool   `json:"autoSelect,omitempty"`
	IsPrimarySuggestion bool   `json:"isPrimarySuggestion,omitempty"`
	IsCustomSearch      bool   `json:"isCustomSearch,omitempty"`
	SearchURL           string `json:"searchUrl,omitempty"`
	TabID               int    `json:"tabId,omitempty"`
	Description         string `json:"description,omitempty"`
}

// IsPrimarySearchSuggestion reports whether c is the provider's primary
// suggestion for a custom search engine query.
func (c *Completion) IsPrimarySearchSuggestion() bool {
	return c != nil && c.IsPrimarySuggestion && c.IsCustomSearch
}

// IsTab reports whether selecting c should focus an existing tab.
func (c *Completion) IsTab() bool {
	return c != nil && c.Description == DescriptionTab
}

// HasInsertText reports whether c previews text into the input when selected.
func (c *Completion) HasInsertText() bool {
	return c != nil && c.InsertText != ""
}
