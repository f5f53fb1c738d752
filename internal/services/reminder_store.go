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

// ReminderStore handles MongoDB CRUD for reminders
type ReminderStore struct {
	collection *mongo.Collection
}

// NewReminderStore creates a new reminder store
func NewReminderStore(mongodb *database.MongoDB) *ReminderStore {
	return &ReminderStore{
		collection: mongodb.Collection(database.CollectionReminders),
	}
}

// ReminderFilters defines the optional listing filters for reminders
type ReminderFilters struct {
	Status   string
	Category string
	Date     *time.Time
	Pagination
}

func (f ReminderFilters) query() bson.M {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Date != nil {
		start, end := dayRange(*f.Date)
		filter["reminderDate"] = bson.M{"$gte": start, "$lt": end}
	}
	return filter
}

// reminderSort orders by reminder date then time, both ascending
var reminderSort = bson.D{{Key: "reminderDate", Value: 1}, {Key: "reminderTime", Value: 1}}

// List returns reminders matching the filters in chronological order
func (s *ReminderStore) List(ctx context.Context, filters ReminderFilters) ([]models.Reminder, int64, error) {
	filter := filters.query()

	opts := options.Find().
		SetSort(reminderSort).
		SetSkip(filters.Skip()).
		SetLimit(filters.Take())

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer cursor.Close(ctx)

	reminders := []models.Reminder{}
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, 0, fmt.Errorf("failed to decode reminders: %w", err)
	}

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reminders: %w", err)
	}

	return reminders, total, nil
}

// GetByID retrieves a single reminder
func (s *ReminderStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Reminder, error) {
	var reminder models.Reminder
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&reminder)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}
	return &reminder, nil
}

// Create inserts a new reminder from validated input
func (s *ReminderStore) Create(ctx context.Context, in validation.ReminderCreateInput) (*models.Reminder, error) {
	now := time.Now()
	reminder := models.Reminder{
		Title:        in.Title,
		Description:  in.Description,
		ReminderDate: in.ReminderDate.Time,
		ReminderTime: in.ReminderTime,
		Status:       models.ReminderStatusPending,
		Priority:     models.PriorityMedium,
		Category:     models.ReminderCategoryPersonal,
		IsRecurring:  in.IsRecurring,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.Status != "" {
		reminder.Status = models.ReminderStatus(in.Status)
	}
	if in.Priority != "" {
		reminder.Priority = models.Priority(in.Priority)
	}
	if in.Category != "" {
		reminder.Category = models.ReminderCategory(in.Category)
	}
	if in.RecurringType != "" {
		reminder.RecurringType = models.RecurringType(in.RecurringType)
	}

	result, err := s.collection.InsertOne(ctx, reminder)
	if err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}
	reminder.ID = result.InsertedID.(primitive.ObjectID)
	return &reminder, nil
}

// Update applies a partial update from the allow-listed fields
func (s *ReminderStore) Update(ctx context.Context, id primitive.ObjectID, in validation.ReminderUpdateInput) (*models.Reminder, error) {
	set := bson.M{"updatedAt": time.Now()}

	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.ReminderDate.Set && in.ReminderDate.Valid {
		set["reminderDate"] = in.ReminderDate.Time
	}
	if in.ReminderTime != nil {
		set["reminderTime"] = *in.ReminderTime
	}
	if in.Status != nil {
		set["status"] = *in.Status
	}
	if in.Priority != nil {
		set["priority"] = *in.Priority
	}
	if in.Category != nil {
		set["category"] = *in.Category
	}
	if in.IsRecurring != nil {
		set["isRecurring"] = *in.IsRecurring
	}
	if in.RecurringType != nil {
		set["recurringType"] = *in.RecurringType
	}

	var reminder models.Reminder
	err := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&reminder)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}
	return &reminder, nil
}

// Delete removes a reminder
func (s *ReminderStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Upcoming returns pending reminders within the next 7 days
func (s *ReminderStore) Upcoming(ctx context.Context, now time.Time) ([]models.Reminder, error) {
	cursor, err := s.collection.Find(ctx, bson.M{
		"reminderDate": bson.M{"$gte": now, "$lte": now.AddDate(0, 0, 7)},
		"status":       models.ReminderStatusPending,
	}, options.Find().SetSort(reminderSort))
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming reminders: %w", err)
	}
	defer cursor.Close(ctx)

	reminders := []models.Reminder{}
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, fmt.Errorf("failed to decode upcoming reminders: %w", err)
	}
	return reminders, nil
}

// ReminderStats is the aggregate summary for reminders
type ReminderStats struct {
	StatusBreakdown []StatusCount `json:"statusBreakdown"`
	TotalReminders  int64         `json:"totalReminders"`
	TodayReminders  int64         `json:"todayReminders"`
}

// Stats returns the status breakdown, total count and today's reminder count
func (s *ReminderStore) Stats(ctx context.Context) (*ReminderStats, error) {
	breakdown, err := statusBreakdown(ctx, s.collection)
	if err != nil {
		return nil, err
	}

	total, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count reminders: %w", err)
	}

	start, end := dayRange(time.Now())
	today, err := s.collection.CountDocuments(ctx, bson.M{
		"reminderDate": bson.M{"$gte": start, "$lt": end},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count today's reminders: %w", err)
	}

	return &ReminderStats{
		StatusBreakdown: breakdown,
		TotalReminders:  total,
		TodayReminders:  today,
	}, nil
}
