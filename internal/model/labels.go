package model

import (
	"encoding/json"
	"sort"
)

// Label is a risk/symptom/condition tag accumulated during a conversation.
type Label string

const (
	LabelFever         Label = "FEVER"
	LabelCough         Label = "COUGH"
	LabelShortOfBreath Label = "SHORTOFBREATH"
	LabelSymptomatic   Label = "SYMPTOMATIC"
	LabelAsymptomatic  Label = "ASYMPTOMATIC"
	LabelDiabetes      Label = "DM"
	LabelCardio        Label = "CARDIO"
	LabelLung          Label = "LUNG"
	LabelHealthRisk    Label = "HEALTHRISK"
	LabelAge           Label = "AGE"
	LabelHighRisk      Label = "HIGH"
	LabelLowRisk       Label = "LOW"
	LabelHCP           Label = "HCP"
)

// LabelSet is the per-conversation accumulated set of labels. Membership is
// all that matters: no duplicates, no order.
type LabelSet map[Label]struct{}

// NewLabelSet builds a set containing the given labels.
func NewLabelSet(labels ...Label) LabelSet {
	s := make(LabelSet, len(labels))
	s.Add(labels...)
	return s
}

// Add inserts the given labels. Inserting a present label is a no-op.
func (s LabelSet) Add(labels ...Label) {
	for _, l := range labels {
		s[l] = struct{}{}
	}
}

func (s LabelSet) Has(l Label) bool {
	_, ok := s[l]
	return ok
}

func (s LabelSet) Len() int {
	return len(s)
}

// Sorted returns the members in lexicographic order, for stable storage and
// deterministic logging.
func (s LabelSet) Sorted() []Label {
	out := make([]Label, 0, len(s))
	for l := range s {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s LabelSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *LabelSet) UnmarshalJSON(data []byte) error {
	var labels []Label
	if err := json.Unmarshal(data, &labels); err != nil {
		return err
	}
	*s = NewLabelSet(labels...)
	return nil
}
