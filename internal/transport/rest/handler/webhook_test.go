package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covid-screening-bot/internal/cache"
	"covid-screening-bot/internal/model"
	"covid-screening-bot/internal/pkg/logger"
	"covid-screening-bot/internal/places"
	"covid-screening-bot/internal/repository"
	"covid-screening-bot/internal/service"
)

const sessionPath = "projects/test/agent/sessions/abc123"

type noDataRepo struct{}

func (noDataRepo) Total(context.Context, model.Metric, string) (int64, error) {
	return 0, repository.ErrNoData
}

type noPlaceClient struct{}

func (noPlaceClient) FindPlace(context.Context, string) (places.Place, error) {
	return places.Place{}, places.ErrPlaceNotFound
}

func (noPlaceClient) OpeningHours(context.Context, string) (*places.OpeningHours, error) {
	return nil, places.ErrNoHours
}

func newTestHandler() (*WebhookHandler, cache.LabelStore) {
	store := cache.NewMemoryLabelStore()
	log := logger.NewNop()
	return NewWebhookHandler(
		service.NewQuestionService(store, log),
		service.NewCardService(store, log),
		service.NewStatsService(noDataRepo{}, log),
		service.NewHoursService(noPlaceClient{}, log),
		log,
	), store
}

func post(t *testing.T, h *WebhookHandler, req *model.WebhookRequest) *model.WebhookResponse {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/v1/webhook", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.WebhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return &resp
}

func TestSymptomTurnReasksQuestion(t *testing.T) {
	h, store := newTestHandler()

	resp := post(t, h, &model.WebhookRequest{
		Session: sessionPath,
		QueryResult: model.QueryResult{
			QueryText: string(model.EventSymptomFever),
			Intent:    model.IntentRef{DisplayName: string(model.IntentSymptomQuestion)},
		},
	})

	require.NotNil(t, resp.FollowupEventInput)
	assert.Equal(t, string(model.EventSymptomFever), resp.FollowupEventInput.Name)
	assert.Equal(t, "en", resp.FollowupEventInput.LanguageCode)

	require.Len(t, resp.FulfillmentMessages, 1)
	payload := resp.FulfillmentMessages[0].Payload
	require.NotNil(t, payload)
	assert.Contains(t, *payload, "richContent")

	labels, err := store.Labels(context.Background(), "abc123")
	require.NoError(t, err)
	assert.True(t, labels.Has(model.LabelFever))
}

func TestFirstTurnNoneEmitsPlaceholderAndFollowup(t *testing.T) {
	h, _ := newTestHandler()

	resp := post(t, h, &model.WebhookRequest{
		Session: sessionPath,
		QueryResult: model.QueryResult{
			QueryText: string(model.EventSymptomNone),
			Intent:    model.IntentRef{DisplayName: string(model.IntentSymptomQuestion)},
		},
	})

	require.NotNil(t, resp.FollowupEventInput)
	assert.Equal(t, string(model.EventSymptomNoMore), resp.FollowupEventInput.Name)

	// Placeholder payload, not an empty message list.
	require.Len(t, resp.FulfillmentMessages, 1)
	payload := resp.FulfillmentMessages[0].Payload
	require.NotNil(t, payload)
	assert.Empty(t, *payload)
}

func TestUnrecognizedEventProducesEmptyResponse(t *testing.T) {
	h, _ := newTestHandler()

	resp := post(t, h, &model.WebhookRequest{
		Session: sessionPath,
		QueryResult: model.QueryResult{
			QueryText: "event-symptom-sneeze",
			Intent:    model.IntentRef{DisplayName: string(model.IntentSymptomQuestion)},
		},
	})

	assert.Empty(t, resp.FulfillmentMessages)
	assert.Nil(t, resp.FollowupEventInput)
}

func TestEndOfFlowSelectsCardsAndExpiresContexts(t *testing.T) {
	h, store := newTestHandler()
	ctx := context.Background()
	require.NoError(t, store.AddLabels(ctx, "abc123", model.LabelSymptomatic, model.LabelShortOfBreath))

	resp := post(t, h, &model.WebhookRequest{
		Session: sessionPath,
		QueryResult: model.QueryResult{
			Intent: model.IntentRef{DisplayName: string(model.IntentEndYes)},
			OutputContexts: []model.Context{
				{
					Name:       sessionPath + "/contexts/risk_labels",
					Parameters: map[string]interface{}{"risk_label1": "HIGH", "risk_label1.original": "exposure"},
				},
			},
		},
	})

	require.Len(t, resp.FulfillmentMessages, 1)
	payload := resp.FulfillmentMessages[0].Payload
	require.NotNil(t, payload)
	groups, ok := (*payload)["richContent"].([]interface{})
	require.True(t, ok)
	// Base pair + high/symptomatic triple + HCP card + urgent card.
	assert.Len(t, groups, 7)

	require.Len(t, resp.OutputContexts, 2)
	for _, c := range resp.OutputContexts {
		assert.Zero(t, c.LifespanCount)
	}
	assert.Equal(t, sessionPath+"/contexts/labels", resp.OutputContexts[0].Name)
	assert.Equal(t, sessionPath+"/contexts/risk_labels", resp.OutputContexts[1].Name)

	labels, err := store.Labels(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, 0, labels.Len(), "label state cleared after card selection")
}

func TestOpeningHoursWithMissingSlotsAsksAgain(t *testing.T) {
	h, _ := newTestHandler()

	resp := post(t, h, &model.WebhookRequest{
		Session: sessionPath,
		QueryResult: model.QueryResult{
			Intent:     model.IntentRef{DisplayName: string(model.IntentOpeningHours)},
			Parameters: map[string]interface{}{"organization": "City Clinic"},
		},
	})

	require.Len(t, resp.FulfillmentMessages, 2)
	assert.Equal(t, []string{"I didn't understand"}, resp.FulfillmentMessages[0].Text.Text)
	assert.Equal(t, []string{"I'm sorry, can you try again?"}, resp.FulfillmentMessages[1].Text.Text)
}

func TestStatsApologyOnNoData(t *testing.T) {
	h, _ := newTestHandler()

	resp := post(t, h, &model.WebhookRequest{
		Session: sessionPath,
		QueryResult: model.QueryResult{
			Intent:     model.IntentRef{DisplayName: string(model.IntentConfirmedCases)},
			Parameters: map[string]interface{}{"geo-country": "Atlantis"},
		},
	})

	require.Len(t, resp.FulfillmentMessages, 1)
	require.NotNil(t, resp.FulfillmentMessages[0].Text)
	assert.Equal(t,
		"I'm sorry, I can't find statistics for confirmed cases in Atlantis",
		resp.FulfillmentMessages[0].Text.Text[0])
}

func TestUnknownIntentYieldsEmptyResponse(t *testing.T) {
	h, _ := newTestHandler()

	resp := post(t, h, &model.WebhookRequest{
		Session: sessionPath,
		QueryResult: model.QueryResult{
			Intent: model.IntentRef{DisplayName: "smalltalk.hello"},
		},
	})
	assert.Empty(t, resp.FulfillmentMessages)
}

func TestInvalidBodyIsBadRequest(t *testing.T) {
	h, _ := newTestHandler()

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/v1/webhook", bytes.NewReader([]byte("{"))))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
