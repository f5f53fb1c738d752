package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReminderStatus represents the state of a reminder
type ReminderStatus string

const (
	ReminderStatusPending   ReminderStatus = "pending"
	ReminderStatusCompleted ReminderStatus = "completed"
	ReminderStatusCancelled ReminderStatus = "cancelled"
)

// ReminderCategory classifies what a reminder is about
type ReminderCategory string

const (
	ReminderCategoryPersonal ReminderCategory = "personal"
	ReminderCategoryWork     ReminderCategory = "work"
	ReminderCategoryMeeting  ReminderCategory = "meeting"
	ReminderCategoryDeadline ReminderCategory = "deadline"
	ReminderCategoryOther    ReminderCategory = "other"
)

// RecurringType is the repeat interval for recurring reminders
type RecurringType string

const (
	RecurringDaily   RecurringType = "daily"
	RecurringWeekly  RecurringType = "weekly"
	RecurringMonthly RecurringType = "monthly"
	RecurringYearly  RecurringType = "yearly"
)

// Reminder represents a dated reminder. RecurringType is only meaningful
// when IsRecurring is set.
type Reminder struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title            string             `bson:"title" json:"title"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	ReminderDate     time.Time          `bson:"reminderDate" json:"reminderDate"`
	ReminderTime     string             `bson:"reminderTime" json:"reminderTime"`
	Status           ReminderStatus     `bson:"status" json:"status"`
	Priority         Priority           `bson:"priority" json:"priority"`
	Category         ReminderCategory   `bson:"category" json:"category"`
	IsRecurring      bool               `bson:"isRecurring" json:"isRecurring"`
	RecurringType    RecurringType      `bson:"recurringType,omitempty" json:"recurringType,omitempty"`
	NotificationSent bool               `bson:"notificationSent" json:"notificationSent"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
