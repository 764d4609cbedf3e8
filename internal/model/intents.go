package model

// Intent enumerates the Dialogflow intents this webhook fulfills. Dispatch
// is a single switch over these values, so adding an intent is a visible,
// reviewable change rather than a map entry.
type Intent string

const (
	IntentOpeningHours      Intent = "coronavirus.closure"
	IntentConfirmedCases    Intent = "coronavirus.confirmed_cases"
	IntentDeaths            Intent = "coronavirus.death"
	IntentRecoveredCases    Intent = "coronavirus.recovered"
	IntentSymptomQuestion   Intent = "qus.e1-continue"
	IntentConditionQuestion Intent = "qus.p3-continue"
	IntentEndYes            Intent = "end-yes"
	IntentEndNo             Intent = "end-no"
)

// Metric names a case-statistics series in the analytics datastore.
type Metric string

const (
	MetricConfirmedCases Metric = "confirmed_cases"
	MetricDeaths         Metric = "deaths"
	MetricRecoveredCases Metric = "recovered_cases"
)

// Valid reports whether m names a known series. Checked before any
// datastore call.
func (m Metric) Valid() bool {
	switch m {
	case MetricConfirmedCases, MetricDeaths, MetricRecoveredCases:
		return true
	}
	return false
}
