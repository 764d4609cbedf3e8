package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"covid-screening-bot/internal/model"
)

// ErrNoData means the query matched no rows for the requested metric and
// location.
var ErrNoData = errors.New("no data for query")

// CaseStatsRepo reads aggregate pandemic case statistics. One collection
// per metric, one document per country/region with its latest cumulative
// total.
type CaseStatsRepo interface {
	// Total sums the latest totals for the metric, limited to country when
	// non-empty. Returns ErrNoData when nothing matches.
	Total(ctx context.Context, metric model.Metric, country string) (int64, error)
}

type caseStatsRepo struct {
	db *mongo.Database
}

// NewCaseStatsRepo returns a Mongo-backed CaseStatsRepo.
func NewCaseStatsRepo(db *mongo.Database) CaseStatsRepo {
	return &caseStatsRepo{db: db}
}

func (r *caseStatsRepo) Total(ctx context.Context, metric model.Metric, country string) (int64, error) {
	match := bson.M{}
	if country != "" {
		match["country_region"] = country
	}
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$latest"}}},
		}}},
	}

	cur, err := r.db.Collection(string(metric)).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregate %s: %w", metric, err)
	}
	defer cur.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("decode %s totals: %w", metric, err)
	}
	if len(results) == 0 {
		return 0, ErrNoData
	}
	return results[0].Total, nil
}
