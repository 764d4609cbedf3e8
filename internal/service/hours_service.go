package service

import (
	"context"
	"strconv"
	"time"

	"covid-screening-bot/internal/pkg/format"
	"covid-screening-bot/internal/pkg/logger"
	"covid-screening-bot/internal/places"
)

// HoursService answers opening-hours questions for an organization in a
// city. Like StatsService, it always returns the final user-facing message.
type HoursService struct {
	places places.Client
	log    *logger.Logger
	now    func() time.Time
}

// NewHoursService creates a new opening-hours service.
func NewHoursService(client places.Client, log *logger.Logger) *HoursService {
	return &HoursService{places: client, log: log, now: time.Now}
}

// OpeningMessage resolves "<organization> <city>" to a place and reports
// either today's closing time (open now) or tomorrow's opening time. Any
// failure yields the apology, naming the resolved place when the first
// lookup step succeeded and the raw query otherwise.
func (s *HoursService) OpeningMessage(ctx context.Context, organization, city string) string {
	query := organization + " " + city

	place, err := s.places.FindPlace(ctx, query)
	if err != nil {
		s.log.Warn("place lookup failed", "query", query, "error", err)
		return "I'm sorry, I can't find opening hours for " + query
	}
	hours, err := s.places.OpeningHours(ctx, place.ID)
	if err != nil {
		s.log.Warn("opening hours lookup failed", "place", place.Name, "error", err)
		return "I'm sorry, I can't find opening hours for " + place.Name
	}

	now := s.now()
	if hours.OpenNow {
		closeTime, ok := closeTimeOn(hours, now.Weekday())
		if !ok {
			s.log.Warn("no close time for place", "place", place.Name, "day", now.Weekday())
			return "I'm sorry, I can't find opening hours for " + place.Name
		}
		return "According to their website " + place.Name +
			" will remain open until " + formatClock(closeTime)
	}

	tomorrow := now.AddDate(0, 0, 1).Weekday()
	openTime, ok := openTimeOn(hours, tomorrow)
	if !ok {
		s.log.Warn("no open time for place", "place", place.Name, "day", tomorrow)
		return "I'm sorry, I can't find opening hours for " + place.Name
	}
	return "According to their website " + place.Name +
		" will remain closed until " + formatClock(openTime)
}

func closeTimeOn(hours *places.OpeningHours, day time.Weekday) (string, bool) {
	for _, p := range hours.Periods {
		if p.Close.Day == day && p.Close.Time != "" {
			return p.Close.Time, true
		}
	}
	return "", false
}

func openTimeOn(hours *places.OpeningHours, day time.Weekday) (string, bool) {
	for _, p := range hours.Periods {
		if p.Open.Day == day && p.Open.Time != "" {
			return p.Open.Time, true
		}
	}
	return "", false
}

// formatClock renders an "HHMM" schedule time as a 12-hour reading.
func formatClock(hhmm string) string {
	if len(hhmm) < 3 {
		return hhmm
	}
	hours, err := strconv.Atoi(hhmm[:2])
	if err != nil {
		return hhmm
	}
	return format.ConvertTimeFormat(hours, hhmm[2:])
}
