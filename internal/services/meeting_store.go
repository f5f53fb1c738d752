package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskdash/internal/database"
	"taskdash/internal/models"
	"taskdash/internal/validation"
)

// MeetingStore handles MongoDB CRUD for meetings
type MeetingStore struct {
	collection *mongo.Collection
}

// NewMeetingStore creates a new meeting store
func NewMeetingStore(mongodb *database.MongoDB) *MeetingStore {
	return &MeetingStore{
		collection: mongodb.Collection(database.CollectionMeetings),
	}
}

// MeetingFilters defines the optional listing filters for meetings.
// Organizer is a case-insensitive substring match; Date restricts to the
// calendar day it falls on.
type MeetingFilters struct {
	Status    string
	Organizer string
	Date      *time.Time
	Pagination
}

func (f MeetingFilters) query() bson.M {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Organizer != "" {
		filter["organizer"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Organizer), Options: "i"}
	}
	if f.Date != nil {
		start, end := dayRange(*f.Date)
		filter["meetingDate"] = bson.M{"$gte": start, "$lt": end}
	}
	return filter
}

// meetingSort orders by meeting date then start time, both ascending
var meetingSort = bson.D{{Key: "meetingDate", Value: 1}, {Key: "startTime", Value: 1}}

// List returns meetings matching the filters in chronological order
func (s *MeetingStore) List(ctx context.Context, filters MeetingFilters) ([]models.Meeting, int64, error) {
	filter := filters.query()

	opts := options.Find().
		SetSort(meetingSort).
		SetSkip(filters.Skip()).
		SetLimit(filters.Take())

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list meetings: %w", err)
	}
	defer cursor.Close(ctx)

	meetings := []models.Meeting{}
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, 0, fmt.Errorf("failed to decode meetings: %w", err)
	}

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count meetings: %w", err)
	}

	return meetings, total, nil
}

// GetByID retrieves a single meeting
func (s *MeetingStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Meeting, error) {
	var meeting models.Meeting
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&meeting)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return &meeting, nil
}

// Create inserts a new meeting from validated input. Duration stays as
// the caller supplied it; it is not cross-checked against the times.
func (s *MeetingStore) Create(ctx context.Context, in validation.MeetingCreateInput) (*models.Meeting, error) {
	now := time.Now()
	meeting := models.Meeting{
		Title:       in.Title,
		Description: in.Description,
		MeetingDate: in.MeetingDate.Time,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Duration:    *in.Duration,
		Location:    in.Location,
		MeetingType: models.MeetingTypeInPerson,
		MeetingLink: in.MeetingLink,
		Organizer:   in.Organizer,
		Agenda:      in.Agenda,
		Status:      models.MeetingStatusScheduled,
		Priority:    models.PriorityMedium,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.MeetingType != "" {
		meeting.MeetingType = models.MeetingType(in.MeetingType)
	}
	if in.Status != "" {
		meeting.Status = models.MeetingStatus(in.Status)
	}
	if in.Priority != "" {
		meeting.Priority = models.Priority(in.Priority)
	}
	for _, p := range in.Participants {
		participant := models.Participant{
			Name:   p.Name,
			Email:  p.Email,
			Status: models.ParticipantStatusPending,
		}
		if p.Status != "" {
			participant.Status = models.ParticipantStatus(p.Status)
		}
		meeting.Participants = append(meeting.Participants, participant)
	}
	if in.Project != "" {
		oid, err := primitive.ObjectIDFromHex(in.Project)
		if err == nil {
			meeting.Project = &oid
		}
	}

	result, err := s.collection.InsertOne(ctx, meeting)
	if err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	meeting.ID = result.InsertedID.(primitive.ObjectID)
	return &meeting, nil
}

// Update applies a partial update from the allow-listed fields
func (s *MeetingStore) Update(ctx context.Context, id primitive.ObjectID, in validation.MeetingUpdateInput) (*models.Meeting, error) {
	set := bson.M{"updatedAt": time.Now()}
	unset := bson.M{}

	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.MeetingDate.Set && in.MeetingDate.Valid {
		set["meetingDate"] = in.MeetingDate.Time
	}
	if in.StartTime != nil {
		set["startTime"] = *in.StartTime
	}
	if in.EndTime != nil {
		set["endTime"] = *in.EndTime
	}
	if in.Duration != nil {
		set["duration"] = *in.Duration
	}
	if in.Location != nil {
		set["location"] = *in.Location
	}
	if in.MeetingType != nil {
		set["meetingType"] = *in.MeetingType
	}
	if in.MeetingLink != nil {
		set["meetingLink"] = *in.MeetingLink
	}
	if in.Organizer != nil {
		set["organizer"] = *in.Organizer
	}
	if in.Participants != nil {
		participants := make([]models.Participant, 0, len(*in.Participants))
		for _, p := range *in.Participants {
			participant := models.Participant{
				Name:   p.Name,
				Email:  p.Email,
				Status: models.ParticipantStatusPending,
			}
			if p.Status != "" {
				participant.Status = models.ParticipantStatus(p.Status)
			}
			participants = append(participants, participant)
		}
		set["participants"] = participants
	}
	if in.Agenda != nil {
		set["agenda"] = *in.Agenda
	}
	if in.Status != nil {
		set["status"] = *in.Status
	}
	if in.Priority != nil {
		set["priority"] = *in.Priority
	}
	if in.Notes != nil {
		set["notes"] = *in.Notes
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

	var meeting models.Meeting
	err := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&meeting)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}
	return &meeting, nil
}

// Delete removes a meeting
func (s *MeetingStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Today returns today's scheduled and ongoing meetings ordered by start time
func (s *MeetingStore) Today(ctx context.Context, now time.Time) ([]models.Meeting, error) {
	start, end := dayRange(now)

	cursor, err := s.collection.Find(ctx, bson.M{
		"meetingDate": bson.M{"$gte": start, "$lt": end},
		"status":      bson.M{"$in": []models.MeetingStatus{models.MeetingStatusScheduled, models.MeetingStatusOngoing}},
	}, options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list today's meetings: %w", err)
	}
	defer cursor.Close(ctx)

	meetings := []models.Meeting{}
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, fmt.Errorf("failed to decode today's meetings: %w", err)
	}
	return meetings, nil
}

// Upcoming returns up to 10 scheduled meetings within the next 7 days
func (s *MeetingStore) Upcoming(ctx context.Context, now time.Time) ([]models.Meeting, error) {
	cursor, err := s.collection.Find(ctx, bson.M{
		"meetingDate": bson.M{"$gte": now, "$lte": now.AddDate(0, 0, 7)},
		"status":      models.MeetingStatusScheduled,
	}, options.Find().SetSort(meetingSort).SetLimit(10))
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming meetings: %w", err)
	}
	defer cursor.Close(ctx)

	meetings := []models.Meeting{}
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, fmt.Errorf("failed to decode upcoming meetings: %w", err)
	}
	return meetings, nil
}

// MeetingStats is the aggregate summary for meetings
type MeetingStats struct {
	StatusBreakdown []StatusCount `json:"statusBreakdown"`
	TotalMeetings   int64         `json:"totalMeetings"`
	TodayMeetings   int64         `json:"todayMeetings"`
}

// Stats returns the status breakdown, total count and today's meeting count
func (s *MeetingStore) Stats(ctx context.Context) (*MeetingStats, error) {
	breakdown, err := statusBreakdown(ctx, s.collection)
	if err != nil {
		return nil, err
	}

	total, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count meetings: %w", err)
	}

	start, end := dayRange(time.Now())
	today, err := s.collection.CountDocuments(ctx, bson.M{
		"meetingDate": bson.M{"$gte": start, "$lt": end},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count today's meetings: %w", err)
	}

	return &MeetingStats{
		StatusBreakdown: breakdown,
		TotalMeetings:   total,
		TodayMeetings:   today,
	}, nil
}
