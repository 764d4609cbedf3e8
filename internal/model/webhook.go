package model

import "strings"

// WebhookRequest is the Dialogflow v2 fulfillment request, reduced to the
// fields this webhook reads.
type WebhookRequest struct {
	ResponseID  string      `json:"responseId"`
	Session     string      `json:"session"`
	QueryResult QueryResult `json:"queryResult"`
}

// QueryResult carries the matched intent, the NLU parameters and, for
// event-triggered turns, the triggering event name in QueryText.
type QueryResult struct {
	QueryText      string                 `json:"queryText"`
	Parameters     map[string]interface{} `json:"parameters"`
	Intent         IntentRef              `json:"intent"`
	OutputContexts []Context              `json:"outputContexts"`
}

// IntentRef identifies the matched intent.
type IntentRef struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// Context is a named, lifespan-scoped record in the conversation's context
// store.
type Context struct {
	Name          string                 `json:"name"`
	LifespanCount int                    `json:"lifespanCount,omitempty"`
	Parameters    map[string]interface{} `json:"parameters,omitempty"`
}

// SessionID returns the bare session identifier, the last segment of the
// session resource path.
func (r *WebhookRequest) SessionID() string {
	if i := strings.LastIndex(r.Session, "/"); i >= 0 {
		return r.Session[i+1:]
	}
	return r.Session
}

// StringParam returns the named NLU parameter when it is a non-empty
// string.
func (r *WebhookRequest) StringParam(key string) string {
	if v, ok := r.QueryResult.Parameters[key].(string); ok {
		return v
	}
	return ""
}

// ContextParams returns the parameters of the named incoming context, or
// nil when the context is absent. Context resource names end in
// ".../contexts/<name>".
func (r *WebhookRequest) ContextParams(name string) map[string]interface{} {
	suffix := "/contexts/" + name
	for _, c := range r.QueryResult.OutputContexts {
		if strings.HasSuffix(c.Name, suffix) || c.Name == name {
			return c.Parameters
		}
	}
	return nil
}

// WebhookResponse is the fulfillment response: messages, an optional
// follow-up event and context mutations.
type WebhookResponse struct {
	FulfillmentMessages []Message   `json:"fulfillmentMessages,omitempty"`
	FollowupEventInput  *EventInput `json:"followupEventInput,omitempty"`
	OutputContexts      []Context   `json:"outputContexts,omitempty"`
}

// Message is one fulfillment message: either plain text or a custom
// payload (rich content or the empty placeholder).
type Message struct {
	Text    *Text    `json:"text,omitempty"`
	Payload *Payload `json:"payload,omitempty"`
}

// Payload is a custom message payload. A pointer to an empty Payload
// marshals as {}, the placeholder the platform requires when a turn
// produces no other content.
type Payload map[string]interface{}

type Text struct {
	Text []string `json:"text"`
}

// EventInput programmatically triggers another intent without user input.
type EventInput struct {
	Name         string `json:"name"`
	LanguageCode string `json:"languageCode"`
}
