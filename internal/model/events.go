package model

// EventName identifies a Dialogflow event, either incoming (the option the
// user just picked, carried in queryText) or outgoing (a follow-up trigger).
type EventName string

const (
	EventSymptomCough         EventName = "event-symptom-cough"
	EventSymptomFever         EventName = "event-symptom-fever"
	EventSymptomShortOfBreath EventName = "event-symptom-shortofbreath"
	// EventSymptomNone is the "None of the above" choice on the first
	// symptom prompt.
	EventSymptomNone EventName = "event-symptom-none"
	// EventSymptomNoMore is the "None of the above" choice once one or more
	// symptoms have been selected, and the programmatic move to the next
	// stage. Intentionally distinct from EventSymptomNone: a first-turn
	// skip and a last-turn exhaustion are different dialogue paths.
	EventSymptomNoMore EventName = "event-symptom-no-more"

	EventConditionCardio     EventName = "event-health-condition-cardio"
	EventConditionDiabetes   EventName = "event-health-condition-dm"
	EventConditionLung       EventName = "event-health-condition-lung"
	EventConditionHealthRisk EventName = "event-health-condition-healtherisk"
	EventConditionNone       EventName = "event-health-condition-none"
)

// SymptomEventLabels maps a symptom selection event to the labels it emits.
var SymptomEventLabels = map[EventName][]Label{
	EventSymptomCough:         {LabelCough, LabelSymptomatic},
	EventSymptomFever:         {LabelFever, LabelSymptomatic},
	EventSymptomShortOfBreath: {LabelShortOfBreath, LabelSymptomatic},
	EventSymptomNone:          {LabelAsymptomatic},
}

// ConditionEventLabels maps a health-condition selection event to the label
// it emits.
var ConditionEventLabels = map[EventName]Label{
	EventConditionCardio:     LabelCardio,
	EventConditionDiabetes:   LabelDiabetes,
	EventConditionLung:       LabelLung,
	EventConditionHealthRisk: LabelHealthRisk,
}
