package validation

// Create and update inputs for each entity. Create inputs carry the full
// allow-listed field set with validation tags; update inputs use pointers
// so absent fields impose no change and no constraint. Unknown fields in
// request bodies are dropped by the JSON decode and never persisted.

// --- Task ---

type TaskCreateInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Status      string   `json:"status" validate:"omitempty,oneof=new inprogress completed closed"`
	Priority    string   `json:"priority" validate:"omitempty,oneof=low medium high"`
	AssignedBy  string   `json:"assignedBy" validate:"required"`
	AssignedTo  string   `json:"assignedTo" validate:"required"`
	Progress    *int     `json:"progress" validate:"omitnil,min=0,max=100"`
	DueDate     Date     `json:"dueDate" validate:"dateopt"`
	Project     string   `json:"project" validate:"omitempty,objectid"`
	Tags        []string `json:"tags"`
}

type TaskUpdateInput struct {
	Title       *string   `json:"title" validate:"omitnil,min=1"`
	Description *string   `json:"description"`
	Status      *string   `json:"status" validate:"omitnil,oneof=new inprogress completed closed"`
	Priority    *string   `json:"priority" validate:"omitnil,oneof=low medium high"`
	AssignedBy  *string   `json:"assignedBy" validate:"omitnil,min=1"`
	AssignedTo  *string   `json:"assignedTo" validate:"omitnil,min=1"`
	Progress    *int      `json:"progress" validate:"omitnil,min=0,max=100"`
	DueDate     Date      `json:"dueDate" validate:"dateopt"`
	Project     *string   `json:"project" validate:"omitnil,omitempty,objectid"`
	Tags        *[]string `json:"tags"`
}

// --- Project ---

type BudgetInput struct {
	Allocated *float64 `json:"allocated" validate:"omitnil,gte=0"`
	Spent     *float64 `json:"spent" validate:"omitnil,gte=0"`
}

type TeamMemberInput struct {
	Name       string `json:"name" validate:"required"`
	Role       string `json:"role"`
	Email      string `json:"email" validate:"omitempty,email"`
	JoinedDate Date   `json:"joinedDate" validate:"dateopt"`
}

type DocumentInput struct {
	Name       string `json:"name" validate:"required"`
	URL        string `json:"url" validate:"required"`
	UploadDate Date   `json:"uploadDate" validate:"dateopt"`
}

type ClientInput struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"omitempty,email"`
	Company string `json:"company"`
}

type ProjectCreateInput struct {
	Name            string                 `json:"name" validate:"required"`
	Description     string                 `json:"description"`
	Status          string                 `json:"status" validate:"omitempty,oneof=planning active on-hold completed cancelled"`
	Progress        *int                   `json:"progress" validate:"omitnil,min=0,max=100"`
	Priority        string                 `json:"priority" validate:"omitempty,oneof=low medium high"`
	StartDate       Date                   `json:"startDate" validate:"datereq"`
	EndDate         Date                   `json:"endDate" validate:"dateopt"`
	ExpectedEndDate Date                   `json:"expectedEndDate" validate:"dateopt"`
	Budget          *BudgetInput           `json:"budget"`
	TeamMembers     []TeamMemberInput      `json:"teamMembers" validate:"dive"`
	ProjectManager  string                 `json:"projectManager" validate:"required"`
	Client          *ClientInput           `json:"client"`
	Tags            []string               `json:"tags"`
	Milestones      []MilestoneCreateInput `json:"milestones" validate:"dive"`
	Documents       []DocumentInput        `json:"documents" validate:"dive"`
}

type ProjectUpdateInput struct {
	Name            *string            `json:"name" validate:"omitnil,min=1"`
	Description     *string            `json:"description"`
	Status          *string            `json:"status" validate:"omitnil,oneof=planning active on-hold completed cancelled"`
	Progress        *int               `json:"progress" validate:"omitnil,min=0,max=100"`
	Priority        *string            `json:"priority" validate:"omitnil,oneof=low medium high"`
	StartDate       Date               `json:"startDate" validate:"dateopt"`
	EndDate         Date               `json:"endDate" validate:"dateopt"`
	ExpectedEndDate Date               `json:"expectedEndDate" validate:"dateopt"`
	Budget          *BudgetInput       `json:"budget"`
	TeamMembers     *[]TeamMemberInput `json:"teamMembers" validate:"omitnil,dive"`
	ProjectManager  *string            `json:"projectManager" validate:"omitnil,min=1"`
	Client          *ClientInput       `json:"client"`
	Tags            *[]string          `json:"tags"`
	Documents       *[]DocumentInput   `json:"documents" validate:"omitnil,dive"`
}

type MilestoneCreateInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	DueDate     Date   `json:"dueDate" validate:"dateopt"`
}

type MilestoneStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending completed overdue"`
}

// --- Meeting ---

type ParticipantInput struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
	Status string `json:"status" validate:"omitempty,oneof=pending accepted declined maybe"`
}

type MeetingCreateInput struct {
	Title        string             `json:"title" validate:"required"`
	Description  string             `json:"description"`
	MeetingDate  Date               `json:"meetingDate" validate:"datereq"`
	StartTime    string             `json:"startTime" validate:"required,hhmm"`
	EndTime      string             `json:"endTime" validate:"required,hhmm"`
	Duration     *int               `json:"duration" validate:"required,min=1"`
	Location     string             `json:"location"`
	MeetingType  string             `json:"meetingType" validate:"omitempty,oneof=in-person video-call phone-call"`
	MeetingLink  string             `json:"meetingLink"`
	Organizer    string             `json:"organizer" validate:"required"`
	Participants []ParticipantInput `json:"participants" validate:"dive"`
	Agenda       string             `json:"agenda"`
	Status       string             `json:"status" validate:"omitempty,oneof=scheduled ongoing completed cancelled"`
	Priority     string             `json:"priority" validate:"omitempty,oneof=low medium high"`
	Project      string             `json:"project" validate:"omitempty,objectid"`
	Notes        string             `json:"notes"`
}

type MeetingUpdateInput struct {
	Title        *string             `json:"title" validate:"omitnil,min=1"`
	Description  *string             `json:"description"`
	MeetingDate  Date                `json:"meetingDate" validate:"dateopt"`
	StartTime    *string             `json:"startTime" validate:"omitnil,hhmm"`
	EndTime      *string             `json:"endTime" validate:"omitnil,hhmm"`
	Duration     *int                `json:"duration" validate:"omitnil,min=1"`
	Location     *string             `json:"location"`
	MeetingType  *string             `json:"meetingType" validate:"omitnil,oneof=in-person video-call phone-call"`
	MeetingLink  *string             `json:"meetingLink"`
	Organizer    *string             `json:"organizer" validate:"omitnil,min=1"`
	Participants *[]ParticipantInput `json:"participants" validate:"omitnil,dive"`
	Agenda       *string             `json:"agenda"`
	Status       *string             `json:"status" validate:"omitnil,oneof=scheduled ongoing completed cancelled"`
	Priority     *string             `json:"priority" validate:"omitnil,oneof=low medium high"`
	Project      *string             `json:"project" validate:"omitnil,omitempty,objectid"`
	Notes        *string             `json:"notes"`
}

// --- Reminder ---

type ReminderCreateInput struct {
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description"`
	ReminderDate  Date   `json:"reminderDate" validate:"datereq"`
	ReminderTime  string `json:"reminderTime" validate:"required,hhmm"`
	Status        string `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
	Priority      string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category      string `json:"category" validate:"omitempty,oneof=personal work meeting deadline other"`
	IsRecurring   bool   `json:"isRecurring"`
	RecurringType string `json:"recurringType" validate:"omitempty,oneof=daily weekly monthly yearly"`
}

type ReminderUpdateInput struct {
	Title         *string `json:"title" validate:"omitnil,min=1"`
	Description   *string `json:"description"`
	ReminderDate  Date    `json:"reminderDate" validate:"dateopt"`
	ReminderTime  *string `json:"reminderTime" validate:"omitnil,hhmm"`
	Status        *string `json:"status" validate:"omitnil,oneof=pending completed cancelled"`
	Priority      *string `json:"priority" validate:"omitnil,oneof=low medium high"`
	Category      *string `json:"category" validate:"omitnil,oneof=personal work meeting deadline other"`
	IsRecurring   *bool   `json:"isRecurring"`
	RecurringType *string `json:"recurringType" validate:"omitnil,omitempty,oneof=daily weekly monthly yearly"`
}

// --- Goal ---

type GoalMilestoneInput struct {
	Title        string   `json:"title" validate:"required"`
	TargetValue  *float64 `json:"targetValue" validate:"omitnil,gte=0"`
	IsAchieved   bool     `json:"isAchieved"`
	AchievedDate Date     `json:"achievedDate" validate:"dateopt"`
}

type GoalCreateInput struct {
	Title        string               `json:"title" validate:"required"`
	Description  string               `json:"description"`
	TargetValue  *float64             `json:"targetValue" validate:"required,gte=0"`
	CurrentValue *float64             `json:"currentValue" validate:"omitnil,gte=0"`
	Unit         string               `json:"unit"`
	Category     string               `json:"category" validate:"omitempty,oneof=personal work health learning financial other"`
	Priority     string               `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status       string               `json:"status" validate:"omitempty,oneof=active completed paused cancelled"`
	StartDate    Date                 `json:"startDate" validate:"datereq"`
	TargetDate   Date                 `json:"targetDate" validate:"datereq"`
	Color        string               `json:"color"`
	Tags         []string             `json:"tags"`
	Milestones   []GoalMilestoneInput `json:"milestones" validate:"dive"`
}

type GoalUpdateInput struct {
	Title        *string               `json:"title" validate:"omitnil,min=1"`
	Description  *string               `json:"description"`
	TargetValue  *float64              `json:"targetValue" validate:"omitnil,gte=0"`
	CurrentValue *float64              `json:"currentValue" validate:"omitnil,gte=0"`
	Unit         *string               `json:"unit"`
	Category     *string               `json:"category" validate:"omitnil,oneof=personal work health learning financial other"`
	Priority     *string               `json:"priority" validate:"omitnil,oneof=low medium high"`
	Status       *string               `json:"status" validate:"omitnil,oneof=active completed paused cancelled"`
	StartDate    Date                  `json:"startDate" validate:"dateopt"`
	TargetDate   Date                  `json:"targetDate" validate:"dateopt"`
	Color        *string               `json:"color"`
	Tags         *[]string             `json:"tags"`
	Milestones   *[]GoalMilestoneInput `json:"milestones" validate:"omitnil,dive"`
}

type GoalProgressInput struct {
	CurrentValue *float64 `json:"currentValue" validate:"required,gte=0"`
}
