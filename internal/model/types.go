package model

import "time"

// Priority ranks a todo.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank returns the sort rank of the priority, high first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Recurrence describes how often a todo repeats. The zero value means none.
type Recurrence string

const (
	RecurrenceNone    Recurrence = ""
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// Todo is a task. ParentID is a weak reference to another todo; the parent
// relation forms a forest over the flat collection.
type Todo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Recurrence  Recurrence `json:"recurring,omitempty"`
	ParentID    *string    `json:"parentId,omitempty"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ActivityType is a fixed kind of workout.
type ActivityType string

const (
	ActivityRunning  ActivityType = "running"
	ActivityCycling  ActivityType = "cycling"
	ActivitySwimming ActivityType = "swimming"
	ActivityGym      ActivityType = "gym"
	ActivityYoga     ActivityType = "yoga"
	ActivityHiking   ActivityType = "hiking"
	ActivityOther    ActivityType = "other"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityRunning, ActivityCycling, ActivitySwimming, ActivityGym,
		ActivityYoga, ActivityHiking, ActivityOther:
		return true
	}
	return false
}

// Activity is a single logged workout.
type Activity struct {
	ID        string       `json:"id"`
	Type      ActivityType `json:"type"`
	Name      string       `json:"name"`
	Duration  int          `json:"duration"`           // minutes
	Distance  *float64     `json:"distance,omitempty"` // km
	Calories  *int         `json:"calories,omitempty"`
	Date      time.Time    `json:"date"`
	Notes     *string      `json:"notes,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// GoalPeriod is the time horizon a goal covers.
type GoalPeriod string

const (
	GoalWeekly  GoalPeriod = "weekly"
	GoalMonthly GoalPeriod = "monthly"
)

func (p GoalPeriod) Valid() bool { return p == GoalWeekly || p == GoalMonthly }

// GoalMetric is the quantity a goal measures.
type GoalMetric string

const (
	MetricActivities GoalMetric = "activities"
	MetricDuration   GoalMetric = "duration"
	MetricDistance   GoalMetric = "distance"
	MetricCalories   GoalMetric = "calories"
)

func (m GoalMetric) Valid() bool {
	switch m {
	case MetricActivities, MetricDuration, MetricDistance, MetricCalories:
		return true
	}
	return false
}

// Goal tracks progress toward a target. Current is maintained by the caller,
// never derived from the activity collection.
type Goal struct {
	ID        string     `json:"id"`
	Period    GoalPeriod `json:"type"`
	Target    float64    `json:"target"`
	Current   float64    `json:"current"`
	Metric    GoalMetric `json:"metric"`
	StartDate time.Time  `json:"startDate"`
	EndDate   time.Time  `json:"endDate"`
}

// BookStatus is the reading state of a book.
type BookStatus string

const (
	BookToRead    BookStatus = "to-read"
	BookReading   BookStatus = "reading"
	BookCompleted BookStatus = "completed"
	BookAbandoned BookStatus = "abandoned"
)

// Rank returns the sort rank of the status, currently-reading first.
func (s BookStatus) Rank() int {
	switch s {
	case BookReading:
		return 0
	case BookToRead:
		return 1
	case BookCompleted:
		return 2
	default:
		return 3
	}
}

func (s BookStatus) Valid() bool {
	switch s {
	case BookToRead, BookReading, BookCompleted, BookAbandoned:
		return true
	}
	return false
}

// Book tracks reading progress. CurrentPage stays within [0, TotalPages].
type Book struct {
	ID          string     `json:"id"`
	ISBN        *string    `json:"isbn,omitempty"`
	Title       string     `json:"title"`
	Author      string     `json:"author"`
	TotalPages  int        `json:"totalPages"`
	CurrentPage int        `json:"currentPage"`
	Status      BookStatus `json:"status"`
	Rating      *int       `json:"rating,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	FinishDate  *time.Time `json:"finishDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Expense is a single spend record. Amount is exact integer cents.
type Expense struct {
	ID            string    `json:"id"`
	Amount        Cents     `json:"amount"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Date          time.Time `json:"date"`
	PaymentMethod *string   `json:"paymentMethod,omitempty"`
	Recurring     bool      `json:"recurring"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BudgetPeriod is the window a budget limit applies to.
type BudgetPeriod string

const (
	BudgetWeekly  BudgetPeriod = "weekly"
	BudgetMonthly BudgetPeriod = "monthly"
	BudgetYearly  BudgetPeriod = "yearly"
)

func (p BudgetPeriod) Valid() bool {
	switch p {
	case BudgetWeekly, BudgetMonthly, BudgetYearly:
		return true
	}
	return false
}

// Budget caps spending for one category. Spent is maintained by the caller,
// never summed from the expense collection.
type Budget struct {
	ID       string       `json:"id"`
	Category string       `json:"category"`
	Limit    Cents        `json:"limit"`
	Period   BudgetPeriod `json:"period"`
	Spent    Cents        `json:"spent"`
}

// Idea is a freeform markdown-ish note.
type Idea struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Tags        []string  `json:"tags"`
	Attachments []string  `json:"attachments"`
	Archived    bool      `json:"archived"`
	Pinned      bool      `json:"pinned"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// User is the profile of the signed-in user.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    *string   `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserSettings is the singleton preference record.
type UserSettings struct {
	DefaultLandingModule string   `json:"defaultLandingModule"`
	EnabledWidgets       []string `json:"enabledWidgets"`
	WidgetOrder          []string `json:"widgetOrder"`

	GlobalRemindersEnabled bool   `json:"globalRemindersEnabled"`
	DefaultReminderTime    string `json:"defaultReminderTime"`
	QuietHoursStart        string `json:"quietHoursStart"`
	QuietHoursEnd          string `json:"quietHoursEnd"`
	EmailNotifications     bool   `json:"emailNotifications"`
	InAppNotifications     bool   `json:"inAppNotifications"`

	Timezone     string `json:"timezone"`
	Currency     string `json:"currency"`
	DateFormat   string `json:"dateFormat"`
	WeekStartDay string `json:"weekStartDay"`

	LastExportDate *time.Time `json:"lastExportDate,omitempty"`
}
