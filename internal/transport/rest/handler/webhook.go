package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"covid-screening-bot/internal/model"
	"covid-screening-bot/internal/pkg/logger"
	"covid-screening-bot/internal/service"
)

// WebhookHandler fulfills conversational turns. Every recognized request is
// answered with HTTP 200 and a well-formed webhook response; lookup
// failures surface as apology text, never as protocol errors.
type WebhookHandler struct {
	questions *service.QuestionService
	cardsSvc  *service.CardService
	stats     *service.StatsService
	hours     *service.HoursService
	log       *logger.Logger
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(
	questions *service.QuestionService,
	cardsSvc *service.CardService,
	stats *service.StatsService,
	hours *service.HoursService,
	log *logger.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		questions: questions,
		cardsSvc:  cardsSvc,
		stats:     stats,
		hours:     hours,
		log:       log,
	}
}

// Handle handles POST /v1/webhook.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req model.WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	requestID := req.ResponseID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	intent := model.Intent(req.QueryResult.Intent.DisplayName)
	log := h.log.With("request_id", requestID, "intent", intent)

	ctx := r.Context()
	session := req.SessionID()
	event := model.EventName(req.QueryResult.QueryText)

	var (
		f   *model.Fulfillment
		err error
	)
	switch intent {
	case model.IntentOpeningHours:
		f = h.openingHours(ctx, &req)
	case model.IntentConfirmedCases:
		f = model.TextFulfillment(h.stats.ConfirmedCasesMessage(ctx, req.StringParam("geo-country")))
	case model.IntentDeaths:
		f = model.TextFulfillment(h.stats.DeathsMessage(ctx, req.StringParam("geo-country")))
	case model.IntentRecoveredCases:
		f = model.TextFulfillment(h.stats.RecoveredCasesMessage(ctx, req.StringParam("geo-country")))
	case model.IntentSymptomQuestion:
		f, err = h.questions.HandleSymptomEvent(ctx, session, event)
	case model.IntentConditionQuestion:
		f, err = h.questions.HandleConditionEvent(ctx, session, event)
	case model.IntentEndYes, model.IntentEndNo:
		f, err = h.cardsSvc.SelectCards(ctx, session, req.ContextParams("risk_labels"), intent)
	default:
		log.Warn("no fulfillment for intent")
	}
	if err != nil {
		// The turn still gets a valid, empty response; failing the request
		// would surface a raw platform error to the user.
		log.Error("turn failed", "session", session, "error", err)
		writeJSON(w, http.StatusOK, &model.WebhookResponse{})
		return
	}

	log.Info("turn fulfilled", "session", session, "event", event)
	writeJSON(w, http.StatusOK, renderResponse(f, req.Session))
}

// openingHours validates the slot parameters before delegating; without
// both, the user is asked to rephrase.
func (h *WebhookHandler) openingHours(ctx context.Context, req *model.WebhookRequest) *model.Fulfillment {
	organization := req.StringParam("organization")
	city := req.StringParam("geo-city")
	if organization == "" || city == "" {
		return model.TextFulfillment("I didn't understand", "I'm sorry, can you try again?")
	}
	return model.TextFulfillment(h.hours.OpeningMessage(ctx, organization, city))
}

// renderResponse turns a service fulfillment into the wire response. A nil
// fulfillment (silent no-op) renders as an empty response; a non-nil one
// with no content carries the placeholder payload so the platform never
// sees an empty message list.
func renderResponse(f *model.Fulfillment, sessionPath string) *model.WebhookResponse {
	resp := &model.WebhookResponse{}
	if f == nil {
		return resp
	}
	for _, line := range f.Text {
		resp.FulfillmentMessages = append(resp.FulfillmentMessages, model.Message{
			Text: &model.Text{Text: []string{line}},
		})
	}
	if len(f.RichContent) > 0 {
		resp.FulfillmentMessages = append(resp.FulfillmentMessages, model.Message{
			Payload: &model.Payload{"richContent": f.RichContent},
		})
	}
	if len(resp.FulfillmentMessages) == 0 {
		resp.FulfillmentMessages = append(resp.FulfillmentMessages, model.Message{
			Payload: &model.Payload{},
		})
	}
	if f.FollowupEvent != "" {
		resp.FollowupEventInput = &model.EventInput{
			Name:         string(f.FollowupEvent),
			LanguageCode: "en",
		}
	}
	for _, name := range f.ExpireContexts {
		resp.OutputContexts = append(resp.OutputContexts, model.Context{
			Name:          sessionPath + "/contexts/" + name,
			LifespanCount: 0,
		})
	}
	return resp
}
