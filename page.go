package wikidoc

import "context"

// Button is one selectable control shown with a results message. Data
// is the opaque identifier routed back to the navigation controller
// when the control is activated.
type Button struct {
	Label string `json:"label"`
	Data  string `json:"data"`
}

// ResultsMessage is the numbered summary of a search's filtered hits.
type ResultsMessage struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Footer      string   `json:"footer,omitempty"`
	Buttons     []Button `json:"buttons,omitempty"`
}

// PageMessage is one deliverable page of a rendered documentation view.
// The first page carries the document title and source link; the last
// page carries the attribution footer.
type PageMessage struct {
	Index  int    `json:"index"`
	First  bool   `json:"first"`
	Last   bool   `json:"last"`
	Title  string `json:"title"`
	URL    string `json:"url,omitempty"`
	Text   string `json:"text"`
	Footer string `json:"footer,omitempty"`
}

// Navigator is the turn-based navigation protocol a presentation
// surface talks to: submit a query, get a numbered summary with
// controls; activate a control, get the rendered pages.
type Navigator interface {
	// Search runs a documentation search for ownerID and stores the
	// filtered hits behind a fresh session.
	Search(ctx context.Context, ownerID string, query string) (*ResultsMessage, error)

	// Select resolves an activated control's opaque data against the
	// owning session and returns the rendered pages for the selected
	// hit. Validation failures return EEXPIRED, EUNAUTHORIZED or
	// EINVALID errors; a failed page fetch returns a fallback page
	// carrying the raw source URL instead of an error.
	Select(ctx context.Context, ownerID string, data string) ([]PageMessage, error)
}
