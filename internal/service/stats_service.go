package service

import (
	"context"
	"fmt"
	"strconv"

	"covid-screening-bot/internal/model"
	"covid-screening-bot/internal/pkg/format"
	"covid-screening-bot/internal/pkg/logger"
	"covid-screening-bot/internal/repository"
)

// countryNameCorrection rewrites country names the NLU produces into the
// naming convention of the case-statistics dataset.
var countryNameCorrection = map[string]string{
	"United States": "US",
	"Cape Verde":    "Cabo Verde",
	"Democratic Republic of the Congo": "Congo (Kinshasa)",
	"Republic of the Congo":            "Congo (Brazzaville)",
	"Côte d'Ivoire":                    "Cote d'Ivoire",
	"Vatikan":                          "Holy See",
	"South Korea":                      "Korea, South",
	"Taiwan":                           "Taiwan*",
}

// StatsService answers case-statistics questions. Every method returns the
// final user-facing message; lookup failures become a fixed apology, never
// an error the transport has to handle.
type StatsService struct {
	repo repository.CaseStatsRepo
	log  *logger.Logger
}

// NewStatsService creates a new statistics service.
func NewStatsService(repo repository.CaseStatsRepo, log *logger.Logger) *StatsService {
	return &StatsService{repo: repo, log: log}
}

// total validates the metric, applies the country-name correction and runs
// the query. The invalid-metric error fires before any datastore call.
func (s *StatsService) total(ctx context.Context, metric model.Metric, country string) (int64, error) {
	if !metric.Valid() {
		return 0, fmt.Errorf("invalid metric %q", metric)
	}
	if corrected, ok := countryNameCorrection[country]; ok {
		country = corrected
	}
	return s.repo.Total(ctx, metric, country)
}

// locationPhrase renders the country for use in a message, keeping the name
// the user actually said.
func locationPhrase(country string) string {
	if country == "" {
		return "worldwide"
	}
	return "in " + country
}

// ConfirmedCasesMessage reports the confirmed-case total for a country, or
// worldwide when country is empty.
func (s *StatsService) ConfirmedCasesMessage(ctx context.Context, country string) string {
	loc := locationPhrase(country)
	total, err := s.total(ctx, model.MetricConfirmedCases, country)
	if err != nil {
		s.log.Warn("confirmed cases lookup failed", "country", country, "error", err)
		return "I'm sorry, I can't find statistics for confirmed cases " + loc
	}
	return "According to Johns Hopkins University, as of today, there are approximately " +
		format.NumberWithCommas(total) + " confirmed cases of coronavirus " + loc + "."
}

// DeathsMessage reports the death total and, when confirmed-case data is
// also available, the death rate to two decimal places.
func (s *StatsService) DeathsMessage(ctx context.Context, country string) string {
	loc := locationPhrase(country)
	deaths, err := s.total(ctx, model.MetricDeaths, country)
	if err != nil {
		s.log.Warn("deaths lookup failed", "country", country, "error", err)
		return "I'm sorry, I can't find statistics for deaths " + loc
	}
	msg := "According to Johns Hopkins University, as of today, approximately " +
		format.NumberWithCommas(deaths) + " people have died from coronavirus " + loc + "."
	confirmed, err := s.total(ctx, model.MetricConfirmedCases, country)
	if err == nil && confirmed > 0 {
		rate := float64(deaths) / float64(confirmed) * 100.0
		msg += " The death rate " + loc + " is " + strconv.FormatFloat(rate, 'f', 2, 64) + "%"
	}
	return msg
}

// RecoveredCasesMessage reports the recovered-case total.
func (s *StatsService) RecoveredCasesMessage(ctx context.Context, country string) string {
	loc := locationPhrase(country)
	total, err := s.total(ctx, model.MetricRecoveredCases, country)
	if err != nil {
		s.log.Warn("recovered cases lookup failed", "country", country, "error", err)
		return "I'm sorry, I can't find statistics for recovered cases " + loc
	}
	return "According to Johns Hopkins University, as of today, approximately " +
		format.NumberWithCommas(total) + " people have recovered from coronavirus " + loc + "."
}
