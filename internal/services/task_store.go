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

// TaskStore handles MongoDB CRUD for tasks
type TaskStore struct {
	collection *mongo.Collection
}

// NewTaskStore creates a new task store
func NewTaskStore(mongodb *database.MongoDB) *TaskStore {
	return &TaskStore{
		collection: mongodb.Collection(database.CollectionTasks),
	}
}

// TaskFilters defines the optional listing filters for tasks
type TaskFilters struct {
	Status   string
	Priority string
	Project  string
	Pagination
}

// query builds the Mongo filter document. Absent parameters impose no
// constraint; provided ones combine with logical AND.
func (f TaskFilters) query() bson.M {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Priority != "" {
		filter["priority"] = f.Priority
	}
	if f.Project != "" {
		if oid, err := primitive.ObjectIDFromHex(f.Project); err == nil {
			filter["project"] = oid
		} else {
			filter["project"] = f.Project
		}
	}
	return filter
}

// List returns tasks matching the filters, newest first, with the
// pre-pagination total
func (s *TaskStore) List(ctx context.Context, filters TaskFilters) ([]models.Task, int64, error) {
	filter := filters.query()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(filters.Skip()).
		SetLimit(filters.Take())

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, 0, fmt.Errorf("failed to decode tasks: %w", err)
	}

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	return tasks, total, nil
}

// GetByID retrieves a single task
func (s *TaskStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error) {
	var task models.Task
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return &task, nil
}

// Create inserts a new task from validated input, applying schema defaults
func (s *TaskStore) Create(ctx context.Context, in validation.TaskCreateInput) (*models.Task, error) {
	now := time.Now()
	task := models.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      models.TaskStatusNew,
		Priority:    models.PriorityMedium,
		AssignedBy:  in.AssignedBy,
		AssignedTo:  in.AssignedTo,
		DueDate:     in.DueDate.Ptr(),
		Tags:        in.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Status != "" {
		task.Status = models.TaskStatus(in.Status)
	}
	if in.Priority != "" {
		task.Priority = models.Priority(in.Priority)
	}
	if in.Progress != nil {
		task.Progress = *in.Progress
	}
	if in.Project != "" {
		oid, err := primitive.ObjectIDFromHex(in.Project)
		if err == nil {
			task.Project = &oid
		}
	}

	result, err := s.collection.InsertOne(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	task.ID = result.InsertedID.(primitive.ObjectID)
	return &task, nil
}

// Update applies a partial update built from the allow-listed fields and
// refreshes the update timestamp
func (s *TaskStore) Update(ctx context.Context, id primitive.ObjectID, in validation.TaskUpdateInput) (*models.Task, error) {
	set := bson.M{"updatedAt": time.Now()}
	unset := bson.M{}

	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.Status != nil {
		set["status"] = *in.Status
	}
	if in.Priority != nil {
		set["priority"] = *in.Priority
	}
	if in.AssignedBy != nil {
		set["assignedBy"] = *in.AssignedBy
	}
	if in.AssignedTo != nil {
		set["assignedTo"] = *in.AssignedTo
	}
	if in.Progress != nil {
		set["progress"] = *in.Progress
	}
	if in.DueDate.Set && in.DueDate.Valid {
		set["dueDate"] = in.DueDate.Time
	}
	if in.Tags != nil {
		set["tags"] = *in.Tags
	}
	if in.Project != nil {
		if *in.Project == "" {
			unset["project"] = ""
		} else if oid, err := primitive.ObjectIDFromHex(*in.Project); err == nil {
			set["project"] = oid
		}
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	var task models.Task
	err := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return &task, nil
}

// Delete removes a task. Deleting a task never touches its project.
func (s *TaskStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// TaskStats is the aggregate summary for tasks
type TaskStats struct {
	StatusBreakdown []StatusCount `json:"statusBreakdown"`
	TotalTasks      int64         `json:"totalTasks"`
	AverageProgress float64       `json:"averageProgress"`
}

// Stats returns the status breakdown, total count and mean progress
// across all tasks
func (s *TaskStore) Stats(ctx context.Context) (*TaskStats, error) {
	breakdown, err := statusBreakdown(ctx, s.collection)
	if err != nil {
		return nil, err
	}

	total, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	avg, err := averageOf(ctx, s.collection, "progress", nil)
	if err != nil {
		return nil, err
	}

	return &TaskStats{
		StatusBreakdown: breakdown,
		TotalTasks:      total,
		AverageProgress: avg,
	}, nil
}
