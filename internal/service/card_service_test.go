package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covid-screening-bot/internal/cache"
	"covid-screening-bot/internal/cards"
	"covid-screening-bot/internal/model"
	"covid-screening-bot/internal/pkg/logger"
)

func TestSelectCardIDs(t *testing.T) {
	tests := []struct {
		name   string
		labels []model.Label
		want   []cards.ID
	}{
		{
			name:   "no labels yields base cards only",
			labels: nil,
			want:   []cards.ID{cards.G2, cards.G1},
		},
		{
			name:   "high risk symptomatic triple",
			labels: []model.Label{model.LabelHighRisk, model.LabelSymptomatic},
			want:   []cards.ID{cards.G2, cards.G1, cards.R5, cards.R4, cards.R3},
		},
		{
			name:   "high risk asymptomatic triple",
			labels: []model.Label{model.LabelHighRisk, model.LabelAsymptomatic},
			want:   []cards.ID{cards.G2, cards.G1, cards.R5, cards.R8, cards.R6},
		},
		{
			name:   "low risk asymptomatic triple",
			labels: []model.Label{model.LabelLowRisk, model.LabelAsymptomatic},
			want:   []cards.ID{cards.G2, cards.G1, cards.R5, cards.R7, cards.R6},
		},
		{
			name:   "low risk symptomatic triple",
			labels: []model.Label{model.LabelLowRisk, model.LabelSymptomatic},
			want:   []cards.ID{cards.G2, cards.G1, cards.R5, cards.R7, cards.R9},
		},
		{
			name:   "risk tier without symptom status adds nothing",
			labels: []model.Label{model.LabelHighRisk},
			want:   []cards.ID{cards.G2, cards.G1},
		},
		{
			name:   "short of breath alone is urgent",
			labels: []model.Label{model.LabelShortOfBreath},
			want:   []cards.ID{cards.G2, cards.G1, cards.VA10},
		},
		{
			name:   "fever without a health condition is not urgent",
			labels: []model.Label{model.LabelFever},
			want:   []cards.ID{cards.G2, cards.G1},
		},
		{
			name:   "fever with a health condition is urgent",
			labels: []model.Label{model.LabelFever, model.LabelDiabetes},
			want:   []cards.ID{cards.G2, cards.G1, cards.HF1, cards.VA10},
		},
		{
			name:   "age and healthrisk share a card without duplication",
			labels: []model.Label{model.LabelAge, model.LabelHealthRisk},
			want:   []cards.ID{cards.G2, cards.G1, cards.HF4},
		},
		{
			name:   "healthcare professional card",
			labels: []model.Label{model.LabelHCP},
			want:   []cards.ID{cards.G2, cards.G1, cards.HF5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := selectCardIDs(model.NewLabelSet(tt.labels...))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectCardIDsNeverDuplicatesAndSortsByRank(t *testing.T) {
	labels := model.NewLabelSet(
		model.LabelHighRisk, model.LabelSymptomatic, model.LabelShortOfBreath,
		model.LabelDiabetes, model.LabelCardio, model.LabelLung,
		model.LabelHealthRisk, model.LabelAge, model.LabelHCP,
		model.LabelFever, model.LabelCough,
	)
	got := selectCardIDs(labels)

	seen := make(map[cards.ID]bool)
	for i, id := range got {
		require.False(t, seen[id], "card %s appears twice", id)
		seen[id] = true
		if i > 0 {
			assert.Greater(t, cards.Rank(got[i-1]), cards.Rank(id), "output not in descending rank order")
		}
	}
}

func TestSelectCardsMergesRiskParamsAndClears(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryLabelStore()
	svc := NewCardService(store, logger.NewNop())

	require.NoError(t, store.AddLabels(ctx, "s1", model.LabelSymptomatic, model.LabelFever))

	riskParams := map[string]interface{}{
		"risk_label1":          "HIGH",
		"risk_label1.original": "I live with someone who tested positive",
		"other":                "ignored",
	}
	f, err := svc.SelectCards(ctx, "s1", riskParams, model.IntentEndNo)
	require.NoError(t, err)

	// HIGH merged from parameters, SYMPTOMATIC from the store: the high/
	// symptomatic triple plus the base cards, by descending rank.
	wantTitles := []string{
		cards.Content(cards.G2)[0].Title,
		cards.Content(cards.G1)[0].Title,
		cards.Content(cards.R5)[0].Title,
		cards.Content(cards.R4)[0].Title,
		cards.Content(cards.R3)[0].Title,
	}
	require.Len(t, f.RichContent, len(wantTitles))
	for i, group := range f.RichContent {
		assert.Equal(t, wantTitles[i], group[0].Title)
	}
	assert.Equal(t, []string{"labels", "risk_labels"}, f.ExpireContexts)

	// Label state must not leak into a later conversation turn.
	labels, err := store.Labels(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, labels.Len())
}

func TestEndYesForcesHealthcareProfessionalCard(t *testing.T) {
	ctx := context.Background()
	svc := NewCardService(cache.NewMemoryLabelStore(), logger.NewNop())

	f, err := svc.SelectCards(ctx, "s1", nil, model.IntentEndYes)
	require.NoError(t, err)

	var titles []string
	for _, group := range f.RichContent {
		titles = append(titles, group[0].Title)
	}
	assert.Contains(t, titles, cards.Content(cards.HF5)[0].Title)
}

func TestEndNoDoesNotForceHealthcareProfessionalCard(t *testing.T) {
	ctx := context.Background()
	svc := NewCardService(cache.NewMemoryLabelStore(), logger.NewNop())

	f, err := svc.SelectCards(ctx, "s1", nil, model.IntentEndNo)
	require.NoError(t, err)

	for _, group := range f.RichContent {
		assert.NotEqual(t, cards.Content(cards.HF5)[0].Title, group[0].Title)
	}
}
