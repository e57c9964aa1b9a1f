// Package entities contains the domain types shared across layers.
package entities

// LookupResult is the terminal output of a lookup pipeline. It is built once
// per command invocation and consumed immediately by the reply layer.
type LookupResult struct {
	// Title is the display name of the item or creature
	Title string
	// Body is the multi-line formatted description
	Body string
	// ImageURL is the page's preview image; empty when the page has none
	ImageURL string
}
