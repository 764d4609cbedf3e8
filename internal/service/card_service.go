package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"covid-screening-bot/internal/cache"
	"covid-screening-bot/internal/cards"
	"covid-screening-bot/internal/model"
	"covid-screening-bot/internal/pkg/logger"
)

// conditionRules maps each health-condition label to its card, in the
// order they are evaluated.
var conditionRules = []struct {
	label model.Label
	cards []cards.ID
}{
	{model.LabelDiabetes, cards.Diabetes},
	{model.LabelCardio, cards.Cardio},
	{model.LabelLung, cards.Lung},
	{model.LabelHealthRisk, cards.HealthRisk},
	{model.LabelAge, cards.Age},
}

// CardService turns the conversation's final label set into an ordered list
// of informational cards.
type CardService struct {
	store cache.LabelStore
	log   *logger.Logger
}

// NewCardService creates a new card service.
func NewCardService(store cache.LabelStore, log *logger.Logger) *CardService {
	return &CardService{store: store, log: log}
}

// SelectCards merges the session's accumulated labels with the risk_label*
// parameters, applies the selection rules, and emits the deduplicated cards
// sorted by descending rank. The session's label state is cleared
// afterwards so it cannot leak into an unrelated conversation.
func (s *CardService) SelectCards(ctx context.Context, session string, riskParams map[string]interface{}, intent model.Intent) (*model.Fulfillment, error) {
	labels, err := s.store.Labels(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}
	if labels.Len() == 0 {
		s.log.Info("no accumulated labels for card selection", "session", session)
	}

	for key, value := range riskParams {
		// The ".original" entries are NLU echoes of the raw utterance, not
		// labels.
		if !strings.HasPrefix(key, "risk_label") || strings.HasSuffix(key, ".original") {
			continue
		}
		if v, ok := value.(string); ok && v != "" {
			labels.Add(model.Label(v))
		}
	}
	if intent == model.IntentEndYes {
		labels.Add(model.LabelHCP)
	}

	f := &model.Fulfillment{ExpireContexts: []string{"labels", "risk_labels"}}
	for _, id := range selectCardIDs(labels) {
		f.AddGroup(cards.Content(id))
	}

	if err := s.store.Clear(ctx, session); err != nil {
		return nil, fmt.Errorf("clear labels: %w", err)
	}
	return f, nil
}

// selectCardIDs applies the fixed selection rules to the merged label set
// and returns the deduplicated ids in descending rank order.
func selectCardIDs(labels model.LabelSet) []cards.ID {
	ids := append([]cards.ID(nil), cards.Basic...)
	if labels.Has(model.LabelHighRisk) {
		if labels.Has(model.LabelSymptomatic) {
			ids = append(ids, cards.HighSymptomatic...)
		} else if labels.Has(model.LabelAsymptomatic) {
			ids = append(ids, cards.HighAsymptomatic...)
		}
	} else if labels.Has(model.LabelLowRisk) {
		if labels.Has(model.LabelSymptomatic) {
			ids = append(ids, cards.LowSymptomatic...)
		} else if labels.Has(model.LabelAsymptomatic) {
			ids = append(ids, cards.LowAsymptomatic...)
		}
	}

	hasHealthCondition := false
	for _, rule := range conditionRules {
		if labels.Has(rule.label) {
			ids = append(ids, rule.cards...)
			hasHealthCondition = true
		}
	}
	if labels.Has(model.LabelHCP) {
		ids = append(ids, cards.HealthcareWorker...)
	}
	if labels.Has(model.LabelShortOfBreath) ||
		(hasHealthCondition && (labels.Has(model.LabelFever) || labels.Has(model.LabelCough))) {
		ids = append(ids, cards.Urgent...)
	}

	ids = dedupe(ids)
	sort.SliceStable(ids, func(i, j int) bool {
		return cards.Rank(ids[i]) > cards.Rank(ids[j])
	})
	return ids
}

// dedupe keeps the first occurrence of each id.
func dedupe(ids []cards.ID) []cards.ID {
	seen := make(map[cards.ID]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
