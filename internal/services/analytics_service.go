package services

import (
	"context"
	"fmt"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskdash/internal/database"
	"taskdash/internal/models"
)

const (
	dashboardCacheKey    = "analytics:dashboard"
	productivityCacheKey = "analytics:productivity"

	// DefaultProductivityDays is the trailing window used when the caller
	// does not supply one
	DefaultProductivityDays = 7
)

var analyticsCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "taskdash_analytics_cache_requests_total",
	Help: "Analytics cache lookups by endpoint and outcome.",
}, []string{"endpoint", "outcome"})

// AnalyticsService builds cross-entity dashboard and productivity figures.
// Responses are memoized for a short TTL and invalidated on writes.
type AnalyticsService struct {
	tasks     *mongo.Collection
	projects  *mongo.Collection
	meetings  *mongo.Collection
	reminders *mongo.Collection
	cache     *cache.Cache
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(mongodb *database.MongoDB, ttl time.Duration) *AnalyticsService {
	return &AnalyticsService{
		tasks:     mongodb.Collection(database.CollectionTasks),
		projects:  mongodb.Collection(database.CollectionProjects),
		meetings:  mongodb.Collection(database.CollectionMeetings),
		reminders: mongodb.Collection(database.CollectionReminders),
		cache:     cache.New(ttl, 2*ttl),
	}
}

// Invalidate drops all memoized analytics responses. Called after writes
// so dashboards never serve figures older than the cache TTL anyway.
func (s *AnalyticsService) Invalidate() {
	s.cache.Flush()
}

// TaskDayBuckets is the per-day task status histogram entry. The JSON
// keys mirror the aggregation output the dashboard charts consume.
type TaskDayBuckets struct {
	Day        string `bson:"_id" json:"_id"`
	Completed  int    `bson:"completed" json:"completed"`
	InProgress int    `bson:"inProgress" json:"inProgress"`
	New        int    `bson:"new" json:"new"`
	Closed     int    `bson:"closed" json:"closed"`
}

// ProjectGoalCard is the trimmed project view shown in the dashboard
// goals widget
type ProjectGoalCard struct {
	ID       interface{}          `bson:"_id" json:"_id"`
	Name     string               `bson:"name" json:"name"`
	Progress int                  `bson:"progress" json:"progress"`
	Status   models.ProjectStatus `bson:"status" json:"status"`
	Priority models.Priority      `bson:"priority" json:"priority"`
}

// DashboardAnalytics is the combined dashboard payload
type DashboardAnalytics struct {
	TaskAnalytics    []TaskDayBuckets  `json:"taskAnalytics"`
	TaskStats        []StatusCount     `json:"taskStats"`
	ProjectStats     []StatusCount     `json:"projectStats"`
	GoalsData        []ProjectGoalCard `json:"goalsData"`
	TodayMeetings    int64             `json:"todayMeetings"`
	PendingReminders int64             `json:"pendingReminders"`
}

// Dashboard assembles the dashboard analytics: a 30-day daily task status
// histogram, task and project status breakdowns, up to 6 active or
// planning projects, today's meeting count and the pending reminder count.
// Days without any task are absent from the histogram.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*DashboardAnalytics, error) {
	if cached, ok := s.cache.Get(dashboardCacheKey); ok {
		analyticsCacheHits.WithLabelValues("dashboard", "hit").Inc()
		return cached.(*DashboardAnalytics), nil
	}
	analyticsCacheHits.WithLabelValues("dashboard", "miss").Inc()

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": thirtyDaysAgo}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: "%Y-%m-%d"},
				{Key: "date", Value: "$createdAt"},
			}}}},
			{Key: "completed", Value: statusBucket(models.TaskStatusCompleted)},
			{Key: "inProgress", Value: statusBucket(models.TaskStatusInProgress)},
			{Key: "new", Value: statusBucket(models.TaskStatusNew)},
			{Key: "closed", Value: statusBucket(models.TaskStatusClosed)},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := s.tasks.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate task analytics: %w", err)
	}
	taskAnalytics := []TaskDayBuckets{}
	if err := cursor.All(ctx, &taskAnalytics); err != nil {
		return nil, fmt.Errorf("failed to decode task analytics: %w", err)
	}

	taskStats, err := statusBreakdown(ctx, s.tasks)
	if err != nil {
		return nil, err
	}
	projectStats, err := statusBreakdown(ctx, s.projects)
	if err != nil {
		return nil, err
	}

	goalsCursor, err := s.projects.Find(ctx,
		bson.M{"status": bson.M{"$in": []models.ProjectStatus{models.ProjectStatusActive, models.ProjectStatusPlanning}}},
		options.Find().
			SetProjection(bson.M{"name": 1, "progress": 1, "status": 1, "priority": 1}).
			SetLimit(6),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list dashboard projects: %w", err)
	}
	goalsData := []ProjectGoalCard{}
	if err := goalsCursor.All(ctx, &goalsData); err != nil {
		return nil, fmt.Errorf("failed to decode dashboard projects: %w", err)
	}

	start, end := dayRange(time.Now())
	todayMeetings, err := s.meetings.CountDocuments(ctx, bson.M{
		"meetingDate": bson.M{"$gte": start, "$lt": end},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count today's meetings: %w", err)
	}

	pendingReminders, err := s.reminders.CountDocuments(ctx, bson.M{
		"status": models.ReminderStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count pending reminders: %w", err)
	}

	analytics := &DashboardAnalytics{
		TaskAnalytics:    taskAnalytics,
		TaskStats:        taskStats,
		ProjectStats:     projectStats,
		GoalsData:        goalsData,
		TodayMeetings:    todayMeetings,
		PendingReminders: pendingReminders,
	}
	s.cache.SetDefault(dashboardCacheKey, analytics)
	return analytics, nil
}

// statusBucket builds a $sum expression counting documents of one status
func statusBucket(status models.TaskStatus) bson.D {
	return bson.D{{Key: "$sum", Value: bson.D{{Key: "$cond", Value: bson.A{
		bson.D{{Key: "$eq", Value: bson.A{"$status", status}}}, 1, 0,
	}}}}}
}

// ProductivityDay is one day of completed-task output
type ProductivityDay struct {
	Day            string `bson:"_id" json:"_id"`
	CompletedTasks int    `bson:"completedTasks" json:"completedTasks"`
	TotalProgress  int    `bson:"totalProgress" json:"totalProgress"`
}

// ProductivityAnalytics is the productivity payload
type ProductivityAnalytics struct {
	ProductivityData      []ProductivityDay `json:"productivityData"`
	AverageCompletionTime float64           `json:"averageCompletionTime"`
}

// Productivity reports per-day completed-task counts and summed progress
// over a trailing window, plus the mean time from creation to last update
// (in days) across those completed tasks. Zero when nothing qualifies.
func (s *AnalyticsService) Productivity(ctx context.Context, days int) (*ProductivityAnalytics, error) {
	if days <= 0 {
		days = DefaultProductivityDays
	}
	cacheKey := fmt.Sprintf("%s:%d", productivityCacheKey, days)
	if cached, ok := s.cache.Get(cacheKey); ok {
		analyticsCacheHits.WithLabelValues("productivity", "hit").Inc()
		return cached.(*ProductivityAnalytics), nil
	}
	analyticsCacheHits.WithLabelValues("productivity", "miss").Inc()

	since := time.Now().AddDate(0, 0, -days)
	match := bson.M{
		"status":    models.TaskStatusCompleted,
		"updatedAt": bson.M{"$gte": since},
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: "%Y-%m-%d"},
				{Key: "date", Value: "$updatedAt"},
			}}}},
			{Key: "completedTasks", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalProgress", Value: bson.D{{Key: "$sum", Value: "$progress"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := s.tasks.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate productivity: %w", err)
	}
	data := []ProductivityDay{}
	if err := cursor.All(ctx, &data); err != nil {
		return nil, fmt.Errorf("failed to decode productivity: %w", err)
	}

	completionPipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$project", Value: bson.D{
			{Key: "completionTime", Value: bson.D{{Key: "$divide", Value: bson.A{
				bson.D{{Key: "$subtract", Value: bson.A{"$updatedAt", "$createdAt"}}},
				1000 * 60 * 60 * 24,
			}}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "avgCompletionTime", Value: bson.D{{Key: "$avg", Value: "$completionTime"}}},
		}}},
	}

	completionCursor, err := s.tasks.Aggregate(ctx, completionPipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate completion time: %w", err)
	}
	var completion []struct {
		AvgCompletionTime float64 `bson:"avgCompletionTime"`
	}
	if err := completionCursor.All(ctx, &completion); err != nil {
		return nil, fmt.Errorf("failed to decode completion time: %w", err)
	}

	analytics := &ProductivityAnalytics{
		ProductivityData: data,
	}
	if len(completion) > 0 {
		analytics.AverageCompletionTime = completion[0].AvgCompletionTime
	}
	s.cache.SetDefault(cacheKey, analytics)
	return analytics, nil
}
