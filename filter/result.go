package filter

// Result holds the output of one filter pass.
type Result struct {
	Text        string      `json:"text"`
	Manifest    Manifest    `json:"manifest"`
	Attachments Attachments `json:"attachments"`
	Warnings    []Warning   `json:"warnings,omitempty"`
}

// Attachments lists what the page must load for the placeholders to come
// alive: library bundles and the client settings payload.
type Attachments struct {
	Libraries []string            `json:"library,omitempty"`
	Settings  map[string]Manifest `json:"settings,omitempty"`
}

// WarningType categorizes filter warnings.
type WarningType string

const (
	WarningMalformedAttributes WarningType = "malformed_attributes"
	WarningUnresolvedLibrary   WarningType = "unresolved_library"
	WarningReplacementNotFound WarningType = "replacement_not_found"
)

// Warning represents a non-fatal issue met while processing a directive.
type Warning struct {
	Type     WarningType `json:"type"`
	Instance string      `json:"instance,omitempty"`
	Message  string      `json:"message"`
}
