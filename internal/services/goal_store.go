package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskdash/internal/database"
	"taskdash/internal/models"
	"taskdash/internal/validation"
)

const defaultGoalColor = "#10b981"

// GoalStore handles MongoDB CRUD for goals. Progress is derived on every
// read; only currentValue and targetValue are persisted.
type GoalStore struct {
	collection *mongo.Collection
}

// NewGoalStore creates a new goal store
func NewGoalStore(mongodb *database.MongoDB) *GoalStore {
	return &GoalStore{
		collection: mongodb.Collection(database.CollectionGoals),
	}
}

// GoalFilters defines the optional listing filters for goals
type GoalFilters struct {
	Status   string
	Category string
	Pagination
}

func (f GoalFilters) query() bson.M {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	return filter
}

// List returns goals matching the filters, newest first, with derived
// fields attached
func (s *GoalStore) List(ctx context.Context, filters GoalFilters) ([]models.GoalResponse, int64, error) {
	filter := filters.query()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(filters.Skip()).
		SetLimit(filters.Take())

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list goals: %w", err)
	}
	defer cursor.Close(ctx)

	var goals []models.Goal
	if err := cursor.All(ctx, &goals); err != nil {
		return nil, 0, fmt.Errorf("failed to decode goals: %w", err)
	}

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count goals: %w", err)
	}

	now := time.Now()
	responses := make([]models.GoalResponse, 0, len(goals))
	for _, g := range goals {
		responses = append(responses, g.ToResponse(now))
	}
	return responses, total, nil
}

// GetByID retrieves a single goal with derived fields attached
func (s *GoalStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.GoalResponse, error) {
	goal, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := goal.ToResponse(time.Now())
	return &resp, nil
}

func (s *GoalStore) get(ctx context.Context, id primitive.ObjectID) (*models.Goal, error) {
	var goal models.Goal
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&goal)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return &goal, nil
}

// Create inserts a new goal from validated input
func (s *GoalStore) Create(ctx context.Context, in validation.GoalCreateInput) (*models.GoalResponse, error) {
	now := time.Now()
	goal := models.Goal{
		Title:       in.Title,
		Description: in.Description,
		TargetValue: *in.TargetValue,
		Unit:        "units",
		Category:    models.GoalCategoryWork,
		Priority:    models.PriorityMedium,
		Status:      models.GoalStatusActive,
		StartDate:   in.StartDate.Time,
		TargetDate:  in.TargetDate.Time,
		Color:       defaultGoalColor,
		Tags:        in.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.CurrentValue != nil {
		goal.CurrentValue = *in.CurrentValue
	}
	if in.Unit != "" {
		goal.Unit = in.Unit
	}
	if in.Category != "" {
		goal.Category = models.GoalCategory(in.Category)
	}
	if in.Priority != "" {
		goal.Priority = models.Priority(in.Priority)
	}
	if in.Status != "" {
		goal.Status = models.GoalStatus(in.Status)
	}
	if in.Color != "" {
		goal.Color = in.Color
	}
	goal.Milestones = buildGoalMilestones(in.Milestones)

	result, err := s.collection.InsertOne(ctx, goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}
	goal.ID = result.InsertedID.(primitive.ObjectID)

	resp := goal.ToResponse(now)
	return &resp, nil
}

// Update applies a partial update from the allow-listed fields
func (s *GoalStore) Update(ctx context.Context, id primitive.ObjectID, in validation.GoalUpdateInput) (*models.GoalResponse, error) {
	set := bson.M{"updatedAt": time.Now()}

	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.TargetValue != nil {
		set["targetValue"] = *in.TargetValue
	}
	if in.CurrentValue != nil {
		set["currentValue"] = *in.CurrentValue
	}
	if in.Unit != nil {
		set["unit"] = *in.Unit
	}
	if in.Category != nil {
		set["category"] = *in.Category
	}
	if in.Priority != nil {
		set["priority"] = *in.Priority
	}
	if in.Status != nil {
		set["status"] = *in.Status
		if models.GoalStatus(*in.Status) == models.GoalStatusCompleted {
			current, err := s.get(ctx, id)
			if err != nil {
				return nil, err
			}
			if completionTransition(current.Status, models.GoalStatus(*in.Status)) {
				set["completedDate"] = time.Now()
			}
		}
	}
	if in.StartDate.Set && in.StartDate.Valid {
		set["startDate"] = in.StartDate.Time
	}
	if in.TargetDate.Set && in.TargetDate.Valid {
		set["targetDate"] = in.TargetDate.Time
	}
	if in.Color != nil {
		set["color"] = *in.Color
	}
	if in.Tags != nil {
		set["tags"] = *in.Tags
	}
	if in.Milestones != nil {
		set["milestones"] = buildGoalMilestones(*in.Milestones)
	}

	var goal models.Goal
	err := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&goal)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	resp := goal.ToResponse(time.Now())
	return &resp, nil
}

// completionTransition reports whether a status change moves a goal into
// completed from a non-completed state. completedDate is stamped only on
// that transition, never re-stamped on an already completed goal.
func completionTransition(current, next models.GoalStatus) bool {
	return next == models.GoalStatusCompleted && current != models.GoalStatusCompleted
}

// buildGoalMilestones converts milestone inputs, carrying achievement
// state through as sent
func buildGoalMilestones(in []validation.GoalMilestoneInput) []models.GoalMilestone {
	milestones := make([]models.GoalMilestone, 0, len(in))
	for _, m := range in {
		milestone := models.GoalMilestone{
			Title:        m.Title,
			IsAchieved:   m.IsAchieved,
			AchievedDate: m.AchievedDate.Ptr(),
		}
		if m.TargetValue != nil {
			milestone.TargetValue = *m.TargetValue
		}
		milestones = append(milestones, milestone)
	}
	return milestones
}

// UpdateProgress sets the goal's current value. When the value reaches the
// target on a goal that is not yet completed, the goal flips to completed
// and its completion date is stamped. Goals that are already completed only
// get the new current value; completedDate is never re-stamped.
func (s *GoalStore) UpdateProgress(ctx context.Context, id primitive.ObjectID, currentValue float64) (*models.GoalResponse, error) {
	goal, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	set := bson.M{
		"currentValue": currentValue,
		"updatedAt":    now,
	}
	if currentValue >= goal.TargetValue && completionTransition(goal.Status, models.GoalStatusCompleted) {
		set["status"] = models.GoalStatusCompleted
		set["completedDate"] = now
	}

	var updated models.Goal
	err = s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update goal progress: %w", err)
	}

	resp := updated.ToResponse(now)
	return &resp, nil
}

// Delete removes a goal
func (s *GoalStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GoalStats is the aggregate summary for goals
type GoalStats struct {
	StatusBreakdown []StatusCount `json:"statusBreakdown"`
	TotalGoals      int64         `json:"totalGoals"`
	CompletedGoals  int64         `json:"completedGoals"`
	ActiveGoals     int64         `json:"activeGoals"`
}

// Stats returns the status breakdown and per-status totals
func (s *GoalStore) Stats(ctx context.Context) (*GoalStats, error) {
	breakdown, err := statusBreakdown(ctx, s.collection)
	if err != nil {
		return nil, err
	}

	total, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count goals: %w", err)
	}

	completed, err := s.collection.CountDocuments(ctx, bson.M{"status": models.GoalStatusCompleted})
	if err != nil {
		return nil, fmt.Errorf("failed to count completed goals: %w", err)
	}

	active, err := s.collection.CountDocuments(ctx, bson.M{"status": models.GoalStatusActive})
	if err != nil {
		return nil, fmt.Errorf("failed to count active goals: %w", err)
	}

	return &GoalStats{
		StatusBreakdown: breakdown,
		TotalGoals:      total,
		CompletedGoals:  completed,
		ActiveGoals:     active,
	}, nil
}
