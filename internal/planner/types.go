package planner

// Task is a single user-supplied task description. The text is opaque: no
// normalization, no uniqueness requirement. Input order is meaningful and is
// echoed into the prompt.
type Task struct {
	Description string
}

// ScheduledTask is one validated schedule entry returned to the caller.
// Time is presentation-formatted on a 12-hour clock ("9:00 AM").
type ScheduledTask struct {
	Task         string
	Time         string
	Reason       string
	CalendarLink string // set only when calendar export was requested and succeeded
}

// PlanDayInput is the input for planning a day.
type PlanDayInput struct {
	Tasks []Task

	// AddToCalendar exports the resulting schedule as same-day Google
	// Calendar events when a calendar client is configured.
	AddToCalendar bool
}

// PlanDayOutput is the result of a successful planning call. The schedule is
// freshly derived on every call; nothing is cached between invocations.
type PlanDayOutput struct {
	Schedule  []ScheduledTask
	TaskCount int
}
