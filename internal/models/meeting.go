package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MeetingStatus represents the lifecycle state of a meeting
type MeetingStatus string

const (
	MeetingStatusScheduled MeetingStatus = "scheduled"
	MeetingStatusOngoing   MeetingStatus = "ongoing"
	MeetingStatusCompleted MeetingStatus = "completed"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

// MeetingType distinguishes how a meeting is held
type MeetingType string

const (
	MeetingTypeInPerson  MeetingType = "in-person"
	MeetingTypeVideoCall MeetingType = "video-call"
	MeetingTypePhoneCall MeetingType = "phone-call"
)

// ParticipantStatus tracks a participant's RSVP
type ParticipantStatus string

const (
	ParticipantStatusPending  ParticipantStatus = "pending"
	ParticipantStatusAccepted ParticipantStatus = "accepted"
	ParticipantStatusDeclined ParticipantStatus = "declined"
	ParticipantStatusMaybe    ParticipantStatus = "maybe"
)

// Meeting represents a scheduled meeting, optionally linked to a project.
// Duration is caller-supplied in minutes and is not derived from the
// start/end times on the server side.
type Meeting struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Title        string              `bson:"title" json:"title"`
	Description  string              `bson:"description,omitempty" json:"description,omitempty"`
	MeetingDate  time.Time           `bson:"meetingDate" json:"meetingDate"`
	StartTime    string              `bson:"startTime" json:"startTime"`
	EndTime      string              `bson:"endTime" json:"endTime"`
	Duration     int                 `bson:"duration" json:"duration"`
	Location     string              `bson:"location,omitempty" json:"location,omitempty"`
	MeetingType  MeetingType         `bson:"meetingType" json:"meetingType"`
	MeetingLink  string              `bson:"meetingLink,omitempty" json:"meetingLink,omitempty"`
	Organizer    string              `bson:"organizer" json:"organizer"`
	Participants []Participant       `bson:"participants,omitempty" json:"participants,omitempty"`
	Agenda       string              `bson:"agenda,omitempty" json:"agenda,omitempty"`
	Status       MeetingStatus       `bson:"status" json:"status"`
	Priority     Priority            `bson:"priority" json:"priority"`
	Project      *primitive.ObjectID `bson:"project,omitempty" json:"project,omitempty"`
	Notes        string              `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// Participant is an invited attendee with an RSVP status
type Participant struct {
	Name   string            `bson:"name" json:"name"`
	Email  string            `bson:"email,omitempty" json:"email,omitempty"`
	Status ParticipantStatus `bson:"status" json:"status"`
}
