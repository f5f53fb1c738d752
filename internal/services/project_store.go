package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskdash/internal/database"
	"taskdash/internal/models"
	"taskdash/internal/validation"
)

// ProjectStore handles MongoDB CRUD for projects and their embedded
// milestones. Project deletion cascades to the tasks referencing it.
type ProjectStore struct {
	collection *mongo.Collection
	tasks      *mongo.Collection
}

// NewProjectStore creates a new project store
func NewProjectStore(mongodb *database.MongoDB) *ProjectStore {
	return &ProjectStore{
		collection: mongodb.Collection(database.CollectionProjects),
		tasks:      mongodb.Collection(database.CollectionTasks),
	}
}

// ProjectFilters defines the optional listing filters for projects
type ProjectFilters struct {
	Status   string
	Priority string
	Pagination
}

func (f ProjectFilters) query() bson.M {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Priority != "" {
		filter["priority"] = f.Priority
	}
	return filter
}

// List returns projects matching the filters, newest first
func (s *ProjectStore) List(ctx context.Context, filters ProjectFilters) ([]models.Project, int64, error) {
	filter := filters.query()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(filters.Skip()).
		SetLimit(filters.Take())

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	defer cursor.Close(ctx)

	projects := []models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, 0, fmt.Errorf("failed to decode projects: %w", err)
	}

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	return projects, total, nil
}

// GetByID retrieves a single project
func (s *ProjectStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var project models.Project
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &project, nil
}

// ProjectDetail is a project with its referencing tasks and derived health
type ProjectDetail struct {
	models.Project
	Tasks  []models.Task       `json:"tasks"`
	Health models.HealthStatus `json:"health"`
}

// GetWithTasks retrieves a project together with the tasks referencing it
// and its computed health
func (s *ProjectStore) GetWithTasks(ctx context.Context, id primitive.ObjectID) (*ProjectDetail, error) {
	project, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cursor, err := s.tasks.Find(ctx, bson.M{"project": id})
	if err != nil {
		return nil, fmt.Errorf("failed to list project tasks: %w", err)
	}
	defer cursor.Close(ctx)

	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode project tasks: %w", err)
	}

	return &ProjectDetail{
		Project: *project,
		Tasks:   tasks,
		Health:  models.ProjectHealth(float64(project.Progress), project.StartDate, project.ExpectedEndDate, time.Now()),
	}, nil
}

// Create inserts a new project from validated input
func (s *ProjectStore) Create(ctx context.Context, in validation.ProjectCreateInput) (*models.Project, error) {
	now := time.Now()
	project := models.Project{
		Name:            in.Name,
		Description:     in.Description,
		Status:          models.ProjectStatusPlanning,
		Priority:        models.PriorityMedium,
		StartDate:       in.StartDate.Time,
		EndDate:         in.EndDate.Ptr(),
		ExpectedEndDate: in.ExpectedEndDate.Ptr(),
		ProjectManager:  in.ProjectManager,
		Milestones:      []models.Milestone{},
		Tags:            in.Tags,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if in.Status != "" {
		project.Status = models.ProjectStatus(in.Status)
	}
	if in.Priority != "" {
		project.Priority = models.Priority(in.Priority)
	}
	if in.Progress != nil {
		project.Progress = *in.Progress
	}
	if in.Budget != nil {
		if in.Budget.Allocated != nil {
			project.Budget.Allocated = *in.Budget.Allocated
		}
		if in.Budget.Spent != nil {
			project.Budget.Spent = *in.Budget.Spent
		}
	}
	project.TeamMembers = buildTeamMembers(in.TeamMembers, now)
	if in.Client != nil {
		project.Client = &models.Client{
			Name:    in.Client.Name,
			Email:   in.Client.Email,
			Company: in.Client.Company,
		}
	}
	for _, m := range in.Milestones {
		project.Milestones = append(project.Milestones, models.Milestone{
			ID:          primitive.NewObjectID(),
			Title:       m.Title,
			Description: m.Description,
			DueDate:     m.DueDate.Ptr(),
			Status:      models.MilestoneStatusPending,
		})
	}
	project.Documents = buildDocuments(in.Documents, now)

	result, err := s.collection.InsertOne(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	project.ID = result.InsertedID.(primitive.ObjectID)
	return &project, nil
}

// Update applies a partial update from the allow-listed fields
func (s *ProjectStore) Update(ctx context.Context, id primitive.ObjectID, in validation.ProjectUpdateInput) (*models.Project, error) {
	set := bson.M{"updatedAt": time.Now()}

	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.Status != nil {
		set["status"] = *in.Status
	}
	if in.Progress != nil {
		set["progress"] = *in.Progress
	}
	if in.Priority != nil {
		set["priority"] = *in.Priority
	}
	if in.StartDate.Set && in.StartDate.Valid {
		set["startDate"] = in.StartDate.Time
	}
	if in.EndDate.Set && in.EndDate.Valid {
		set["endDate"] = in.EndDate.Time
	}
	if in.ExpectedEndDate.Set && in.ExpectedEndDate.Valid {
		set["expectedEndDate"] = in.ExpectedEndDate.Time
	}
	if in.Budget != nil {
		if in.Budget.Allocated != nil {
			set["budget.allocated"] = *in.Budget.Allocated
		}
		if in.Budget.Spent != nil {
			set["budget.spent"] = *in.Budget.Spent
		}
	}
	if in.TeamMembers != nil {
		set["teamMembers"] = buildTeamMembers(*in.TeamMembers, time.Now())
	}
	if in.ProjectManager != nil {
		set["projectManager"] = *in.ProjectManager
	}
	if in.Client != nil {
		set["client"] = models.Client{
			Name:    in.Client.Name,
			Email:   in.Client.Email,
			Company: in.Client.Company,
		}
	}
	if in.Tags != nil {
		set["tags"] = *in.Tags
	}
	if in.Documents != nil {
		set["documents"] = buildDocuments(*in.Documents, time.Now())
	}

	var project models.Project
	err := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &project, nil
}

// buildTeamMembers converts member inputs, keeping a supplied join date
// and defaulting absent ones to now
func buildTeamMembers(in []validation.TeamMemberInput, now time.Time) []models.TeamMember {
	members := make([]models.TeamMember, 0, len(in))
	for _, m := range in {
		member := models.TeamMember{
			Name:       m.Name,
			Role:       m.Role,
			Email:      m.Email,
			JoinedDate: now,
		}
		if m.JoinedDate.Set && m.JoinedDate.Valid {
			member.JoinedDate = m.JoinedDate.Time
		}
		members = append(members, member)
	}
	return members
}

// buildDocuments converts document inputs, defaulting uploadDate to now
func buildDocuments(in []validation.DocumentInput, now time.Time) []models.Document {
	docs := make([]models.Document, 0, len(in))
	for _, d := range in {
		doc := models.Document{
			Name:       d.Name,
			URL:        d.URL,
			UploadDate: now,
		}
		if d.UploadDate.Set && d.UploadDate.Valid {
			doc.UploadDate = d.UploadDate.Time
		}
		docs = append(docs, doc)
	}
	return docs
}

// Delete removes a project and cascades to its tasks. The two deletes are
// independent writes, not a transaction; a crash in between leaves
// orphaned tasks, which matches the source system's accepted behavior.
func (s *ProjectStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	tasks, err := s.tasks.DeleteMany(ctx, bson.M{"project": id})
	if err != nil {
		return fmt.Errorf("failed to delete project tasks: %w", err)
	}
	if tasks.DeletedCount > 0 {
		slog.Info("cascade deleted project tasks", "project", id.Hex(), "tasks", tasks.DeletedCount)
	}
	return nil
}

// RecalculateProgress sets the project's progress to the rounded mean of
// its tasks' progress. Projects without tasks are left untouched.
func (s *ProjectStore) RecalculateProgress(ctx context.Context, id primitive.ObjectID) (*models.Project, bool, error) {
	cursor, err := s.tasks.Find(ctx, bson.M{"project": id})
	if err != nil {
		return nil, false, fmt.Errorf("failed to list project tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, false, fmt.Errorf("failed to decode project tasks: %w", err)
	}
	if len(tasks) == 0 {
		return nil, false, nil
	}

	progresses := make([]int, 0, len(tasks))
	for _, t := range tasks {
		progresses = append(progresses, t.Progress)
	}
	average := int(math.Round(models.AverageProgress(progresses)))

	var project models.Project
	err = s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"progress": average, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, true, ErrNotFound
		}
		return nil, true, fmt.Errorf("failed to update project progress: %w", err)
	}
	return &project, true, nil
}

// AddMilestone appends a milestone to a project
func (s *ProjectStore) AddMilestone(ctx context.Context, id primitive.ObjectID, in validation.MilestoneCreateInput) (*models.Project, error) {
	milestone := models.Milestone{
		ID:          primitive.NewObjectID(),
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate.Ptr(),
		Status:      models.MilestoneStatusPending,
	}

	var project models.Project
	err := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"milestones": milestone},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to add milestone: %w", err)
	}
	return &project, nil
}

// UpdateMilestoneStatus changes one milestone's status, stamping its
// completion date when it transitions to completed
func (s *ProjectStore) UpdateMilestoneStatus(ctx context.Context, projectID, milestoneID primitive.ObjectID, status models.MilestoneStatus) (*models.Project, error) {
	set := bson.M{
		"milestones.$.status": status,
		"updatedAt":           time.Now(),
	}
	if status == models.MilestoneStatusCompleted {
		set["milestones.$.completedDate"] = time.Now()
	}

	var project models.Project
	err := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": projectID, "milestones._id": milestoneID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// Distinguish a missing project from a missing milestone
			if _, getErr := s.GetByID(ctx, projectID); getErr != nil {
				return nil, getErr
			}
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update milestone: %w", err)
	}
	return &project, nil
}

// MarkOverdueMilestones flips pending milestones past their due date to
// overdue across all projects. Returns the number of projects touched.
func (s *ProjectStore) MarkOverdueMilestones(ctx context.Context, now time.Time) (int64, error) {
	result, err := s.collection.UpdateMany(
		ctx,
		bson.M{"milestones": bson.M{"$elemMatch": bson.M{
			"status":  models.MilestoneStatusPending,
			"dueDate": bson.M{"$lt": now},
		}}},
		bson.M{"$set": bson.M{
			"milestones.$[m].status": models.MilestoneStatusOverdue,
			"updatedAt":              now,
		}},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{bson.M{
				"m.status":  models.MilestoneStatusPending,
				"m.dueDate": bson.M{"$lt": now},
			}},
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue milestones: %w", err)
	}
	return result.ModifiedCount, nil
}

// ProjectStats is the aggregate summary for projects
type ProjectStats struct {
	StatusBreakdown []StatusCount `json:"statusBreakdown"`
	TotalProjects   int64         `json:"totalProjects"`
	ActiveProjects  int64         `json:"activeProjects"`
	AverageProgress float64       `json:"averageProgress"`
}

// Stats returns the status breakdown, totals and mean progress
func (s *ProjectStore) Stats(ctx context.Context) (*ProjectStats, error) {
	breakdown, err := statusBreakdown(ctx, s.collection)
	if err != nil {
		return nil, err
	}

	total, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	active, err := s.collection.CountDocuments(ctx, bson.M{"status": models.ProjectStatusActive})
	if err != nil {
		return nil, fmt.Errorf("failed to count active projects: %w", err)
	}

	avg, err := averageOf(ctx, s.collection, "progress", nil)
	if err != nil {
		return nil, err
	}

	return &ProjectStats{
		StatusBreakdown: breakdown,
		TotalProjects:   total,
		ActiveProjects:  active,
		AverageProgress: avg,
	}, nil
}
