package model

import "time"

// SlotKind identifies which result a Slot carries.
type SlotKind string

const (
	SlotKindPage   SlotKind = "page"
	SlotKindSearch SlotKind = "search"
)

// Slot is the single most recent result held for a session. Exactly one of
// Page or Search is set, matching Kind.
type Slot struct {
	Kind      SlotKind          `json:"kind"`
	Page      *ExtractionResult `json:"page,omitempty"`
	Search    *SearchResult     `json:"search,omitempty"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewPageSlot wraps a page extraction in a Slot.
func NewPageSlot(r ExtractionResult) *Slot {
	return &Slot{Kind: SlotKindPage, Page: &r, UpdatedAt: time.Now().UTC()}
}

// NewSearchSlot wraps a search result in a Slot.
func NewSearchSlot(r SearchResult) *Slot {
	return &Slot{Kind: SlotKindSearch, Search: &r, UpdatedAt: time.Now().UTC()}
}

// ModelDescriptor describes a chat model offered to clients.
type ModelDescriptor struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}
