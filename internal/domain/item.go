package domain

// Built-in item categories. The category field is an open string — users may
// supply their own category for custom items — but the default catalog and
// the client UI are organized around these five.
const (
	CategoryClothing    = "clothing"
	CategoryToiletries  = "toiletries"
	CategoryElectronics = "electronics"
	CategoryDocuments   = "documents"
	CategoryAdditional  = "additional"
)

// PackingItem is a single packable entry inside a list.
// JSON field names match the original client wire format, so saved lists
// round-trip unchanged.
type PackingItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
	Checked     bool   `json:"checked"`
	Quantity    int    `json:"quantity"`
	// IsCustom marks user-added items. Only custom items may be removed
	// from a list; catalog defaults can merely be unchecked.
	IsCustom bool `json:"isCustom"`
}
