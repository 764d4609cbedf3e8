package model

// BlockType is the renderer type of one rich-content block.
type BlockType string

const (
	BlockList        BlockType = "list"
	BlockDescription BlockType = "description"
	BlockDivider     BlockType = "divider"
	BlockAccordion   BlockType = "accordion"
	BlockChips       BlockType = "chips"
)

// Block is one typed element of a rich-content group. Which fields are set
// depends on the type: list options carry a title, an optional subtitle and
// a trigger event; accordions carry a title and an HTML body; dividers
// carry nothing.
type Block struct {
	Type     BlockType    `json:"type"`
	Title    string       `json:"title,omitempty"`
	Subtitle string       `json:"subtitle,omitempty"`
	Text     string       `json:"text,omitempty"`
	Event    *EventSpec   `json:"event,omitempty"`
	Options  []ChipOption `json:"options,omitempty"`
}

// EventSpec is the event a list option fires when selected.
type EventSpec struct {
	Name         string `json:"name"`
	LanguageCode string `json:"languageCode"`
}

// ChipOption is one suggestion chip.
type ChipOption struct {
	Text string `json:"text"`
}

// Divider returns a divider block.
func Divider() Block {
	return Block{Type: BlockDivider}
}

// ListOption builds a selectable list block firing the given event.
func ListOption(title, subtitle string, event EventName) Block {
	return Block{
		Type:     BlockList,
		Title:    title,
		Subtitle: subtitle,
		Event:    &EventSpec{Name: string(event), LanguageCode: "en"},
	}
}
