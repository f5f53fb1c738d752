package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when an identifier does not resolve to a live document
var ErrNotFound = errors.New("not found")

// StatusCount is one entry of a status breakdown. The _id key mirrors the
// raw $group output the dashboard frontend consumes.
type StatusCount struct {
	Status string `bson:"_id" json:"_id"`
	Count  int    `bson:"count" json:"count"`
}

// Pagination carries the 1-based page and page size of a listing request.
// Non-positive or missing values fall back to page 1 with 10 records.
type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) normalized() (page, limit int) {
	page = p.Page
	if page < 1 {
		page = 1
	}
	limit = p.Limit
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

// Skip returns the number of documents to skip for the requested page
func (p Pagination) Skip() int64 {
	page, limit := p.normalized()
	return int64((page - 1) * limit)
}

// Take returns the page size
func (p Pagination) Take() int64 {
	_, limit := p.normalized()
	return int64(limit)
}

// CurrentPage returns the normalized page number
func (p Pagination) CurrentPage() int {
	page, _ := p.normalized()
	return page
}

// TotalPages computes the page count for a pre-pagination total
func (p Pagination) TotalPages(total int64) int {
	_, limit := p.normalized()
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}

// dayRange returns the half-open interval [startOfDay, startOfDay+24h)
// around the given instant, in server-local time.
func dayRange(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}

// statusBreakdown groups a collection's documents by their status field.
// Only statuses present in the data appear; there is no zero-filling.
func statusBreakdown(ctx context.Context, coll *mongo.Collection) ([]StatusCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate status breakdown: %w", err)
	}
	defer cursor.Close(ctx)

	breakdown := []StatusCount{}
	if err := cursor.All(ctx, &breakdown); err != nil {
		return nil, fmt.Errorf("failed to decode status breakdown: %w", err)
	}
	return breakdown, nil
}

// averageOf runs a collection-wide $avg over one numeric field, optionally
// restricted by a match filter. An empty collection averages to 0.
func averageOf(ctx context.Context, coll *mongo.Collection, field string, match bson.M) (float64, error) {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: nil},
		{Key: "avg", Value: bson.D{{Key: "$avg", Value: "$" + field}}},
	}}})

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate average %s: %w", field, err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Avg float64 `bson:"avg"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode average %s: %w", field, err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Avg, nil
}
