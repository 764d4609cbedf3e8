package model

// Fulfillment is what a service produces for one turn. The transport layer
// renders it into a WebhookResponse; a Fulfillment with no text and no rich
// content renders as the required placeholder payload so the response is
// never empty.
type Fulfillment struct {
	// Text lines, each becoming its own text message.
	Text []string
	// RichContent groups; for questions a single group of option blocks,
	// for cards one group per card.
	RichContent [][]Block
	// FollowupEvent, when set, re-triggers another intent after this turn.
	FollowupEvent EventName
	// ExpireContexts names contexts to expire (lifespan zero) in the
	// response.
	ExpireContexts []string
}

// TextFulfillment builds a plain-text fulfillment.
func TextFulfillment(lines ...string) *Fulfillment {
	return &Fulfillment{Text: lines}
}

// AddGroup appends one rich-content group.
func (f *Fulfillment) AddGroup(blocks []Block) {
	f.RichContent = append(f.RichContent, blocks)
}
