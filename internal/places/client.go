// Package places resolves organizations to places and their opening hours.
package places

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"googlemaps.github.io/maps"
)

var (
	// ErrPlaceNotFound means the text query matched no place.
	ErrPlaceNotFound = errors.New("no matching place")
	// ErrNoHours means the place carries no opening-hours data.
	ErrNoHours = errors.New("no opening hours for place")
)

// Place is a resolved place candidate.
type Place struct {
	ID   string
	Name string
}

// OpenClose is one side of an opening period. Time is a 24-hour "HHMM"
// string.
type OpenClose struct {
	Day  time.Weekday
	Time string
}

// Period is one open/close span of a weekly schedule.
type Period struct {
	Open  OpenClose
	Close OpenClose
}

// OpeningHours is a place's weekly schedule.
type OpeningHours struct {
	OpenNow bool
	Periods []Period
}

// Client is the two-step place lookup the opening-hours service needs.
type Client interface {
	FindPlace(ctx context.Context, query string) (Place, error)
	OpeningHours(ctx context.Context, placeID string) (*OpeningHours, error)
}

type googleClient struct {
	maps *maps.Client
}

// NewGoogleClient returns a Client backed by the Google Maps Places API.
// Each call is bounded by a 5 second HTTP timeout.
func NewGoogleClient(apiKey string) (Client, error) {
	c, err := maps.NewClient(
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(&http.Client{Timeout: 5 * time.Second}),
	)
	if err != nil {
		return nil, fmt.Errorf("maps client: %w", err)
	}
	return &googleClient{maps: c}, nil
}

func (g *googleClient) FindPlace(ctx context.Context, query string) (Place, error) {
	resp, err := g.maps.FindPlaceFromText(ctx, &maps.FindPlaceFromTextRequest{
		Input:     query,
		InputType: maps.FindPlaceFromTextInputTypeTextQuery,
		Fields: []maps.PlaceSearchFieldMask{
			maps.PlaceSearchFieldMaskPlaceID,
			maps.PlaceSearchFieldMaskName,
		},
	})
	if err != nil {
		return Place{}, fmt.Errorf("find place %q: %w", query, err)
	}
	if len(resp.Candidates) == 0 {
		return Place{}, ErrPlaceNotFound
	}
	candidate := resp.Candidates[0]
	if candidate.PlaceID == "" {
		return Place{}, ErrPlaceNotFound
	}
	return Place{ID: candidate.PlaceID, Name: candidate.Name}, nil
}

func (g *googleClient) OpeningHours(ctx context.Context, placeID string) (*OpeningHours, error) {
	resp, err := g.maps.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields:  []maps.PlaceDetailsFieldMask{maps.PlaceDetailsFieldMaskOpeningHours},
	})
	if err != nil {
		return nil, fmt.Errorf("place details %q: %w", placeID, err)
	}
	hours := resp.OpeningHours
	if hours == nil || len(hours.Periods) == 0 {
		return nil, ErrNoHours
	}
	out := &OpeningHours{
		OpenNow: hours.OpenNow != nil && *hours.OpenNow,
	}
	for _, p := range hours.Periods {
		out.Periods = append(out.Periods, Period{
			Open:  OpenClose{Day: p.Open.Day, Time: p.Open.Time},
			Close: OpenClose{Day: p.Close.Day, Time: p.Close.Time},
		})
	}
	return out, nil
}
