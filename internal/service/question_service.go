package service

import (
	"context"
	"fmt"

	"covid-screening-bot/internal/cache"
	"covid-screening-bot/internal/model"
	"covid-screening-bot/internal/pkg/logger"
)

// questionOption is one selectable category of a multi-choice question: the
// label that removes it once recorded, and the block(s) presenting it.
type questionOption struct {
	label  model.Label
	blocks []model.Block
}

// questionDef is one multi-choice question. The same question is re-asked
// after every selection with the chosen category removed, until the user
// declines or every category is exhausted.
type questionDef struct {
	header model.Block
	// dividedOptions interleaves a divider after each option block.
	dividedOptions bool
	options        []questionOption
	none           model.Block
	// exhausted fires when no selectable categories remain. For symptoms
	// this is the dedicated no-more event; the condition question reuses
	// its none event.
	exhausted model.EventName
}

var symptomQuestion = questionDef{
	header: model.Block{
		Type:  model.BlockDescription,
		Title: "Do you have any more of these symptoms? Choose all that apply:",
	},
	dividedOptions: true,
	options: []questionOption{
		{
			label:  model.LabelFever,
			blocks: []model.Block{model.ListOption("Fever (temperature >100.4 °F or 38 °C) or feeling feverish", "", model.EventSymptomFever)},
		},
		{
			label:  model.LabelShortOfBreath,
			blocks: []model.Block{model.ListOption("Shortness of breath (not severe)", "", model.EventSymptomShortOfBreath)},
		},
		{
			label:  model.LabelCough,
			blocks: []model.Block{model.ListOption("Cough", "", model.EventSymptomCough)},
		},
	},
	none:      model.ListOption("None of the above", "", model.EventSymptomNoMore),
	exhausted: model.EventSymptomNoMore,
}

var conditionQuestion = questionDef{
	header: model.Block{
		Type:  model.BlockDescription,
		Title: "Do you have any other of these conditions? Choose all that apply:",
	},
	options: []questionOption{
		{
			label:  model.LabelLung,
			blocks: []model.Block{model.ListOption("Chronic lung disease or moderate to severe asthma", "", model.EventConditionLung)},
		},
		{
			label:  model.LabelCardio,
			blocks: []model.Block{model.ListOption("Serious heart conditions", "", model.EventConditionCardio)},
		},
		{
			label: model.LabelHealthRisk,
			blocks: []model.Block{
				model.ListOption(
					"Immunocompromised",
					"Many conditions can cause a person to be immunocompromised, including cancer treatment, smoking, bone marrow or organ transplantation, immune deficiencies, poorly controlled HIV or AIDS, and prolonged use of corticosteroids and other immune weakening medications",
					model.EventConditionHealthRisk,
				),
				model.ListOption("Severe obesity", "body mass index [BMI] of 40 or higher", model.EventConditionHealthRisk),
			},
		},
		{
			label:  model.LabelDiabetes,
			blocks: []model.Block{model.ListOption("Diabetes", "", model.EventConditionDiabetes)},
		},
		{
			label: model.LabelHealthRisk,
			blocks: []model.Block{
				model.ListOption("Chronic kidney disease undergoing dialysis", "", model.EventConditionHealthRisk),
				model.ListOption("Liver disease", "", model.EventConditionHealthRisk),
			},
		},
	},
	none:      model.ListOption("None of above", "", model.EventConditionNone),
	exhausted: model.EventConditionNone,
}

// QuestionService accumulates labels from selection events and re-emits
// each multi-choice question without its already-selected categories.
type QuestionService struct {
	store cache.LabelStore
	log   *logger.Logger
}

// NewQuestionService creates a new question service.
func NewQuestionService(store cache.LabelStore, log *logger.Logger) *QuestionService {
	return &QuestionService{store: store, log: log}
}

// HandleSymptomEvent processes one symptom selection. An unrecognized event
// returns (nil, nil): no response is produced and the platform's own
// fallback applies.
func (s *QuestionService) HandleSymptomEvent(ctx context.Context, session string, event model.EventName) (*model.Fulfillment, error) {
	if event == "" {
		return &model.Fulfillment{}, nil
	}
	labels, ok := model.SymptomEventLabels[event]
	if !ok {
		s.log.Debug("ignoring unrecognized symptom event", "event", event)
		return nil, nil
	}
	if err := s.store.AddLabels(ctx, session, labels...); err != nil {
		return nil, fmt.Errorf("record symptom labels: %w", err)
	}
	// An initial "None of the above" marks the user asymptomatic and moves
	// straight to the next stage.
	if event == model.EventSymptomNone {
		return &model.Fulfillment{FollowupEvent: model.EventSymptomNoMore}, nil
	}
	return s.reask(ctx, session, event, symptomQuestion)
}

// HandleConditionEvent processes one health-condition selection, with the
// same no-op behavior for unrecognized events.
func (s *QuestionService) HandleConditionEvent(ctx context.Context, session string, event model.EventName) (*model.Fulfillment, error) {
	if event == "" {
		return &model.Fulfillment{}, nil
	}
	label, ok := model.ConditionEventLabels[event]
	if !ok {
		s.log.Debug("ignoring unrecognized condition event", "event", event)
		return nil, nil
	}
	if err := s.store.AddLabels(ctx, session, label); err != nil {
		return nil, fmt.Errorf("record condition label: %w", err)
	}
	return s.reask(ctx, session, event, conditionQuestion)
}

// reask rebuilds the question without the categories already recorded. When
// none remain it fires the exhaustion follow-up instead of re-prompting;
// otherwise the follow-up is the incoming event itself, so the same
// question intent fires again.
func (s *QuestionService) reask(ctx context.Context, session string, event model.EventName, q questionDef) (*model.Fulfillment, error) {
	labels, err := s.store.Labels(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}

	blocks := []model.Block{q.header, model.Divider()}
	remaining := 0
	for _, opt := range q.options {
		if labels.Has(opt.label) {
			continue
		}
		blocks = append(blocks, opt.blocks...)
		if q.dividedOptions {
			blocks = append(blocks, model.Divider())
		}
		remaining++
	}
	blocks = append(blocks, q.none)

	if remaining == 0 {
		return &model.Fulfillment{FollowupEvent: q.exhausted}, nil
	}

	f := &model.Fulfillment{FollowupEvent: event}
	f.AddGroup(blocks)
	return f, nil
}
