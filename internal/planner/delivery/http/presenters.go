package http

import (
	"fmt"

	"github.com/jdev86/daily-task-app/internal/planner"
)

// --- Request DTOs ---

// maxTasksPerPlan caps a single planning request; the prompt lists every
// task verbatim and unbounded lists degrade the model's output.
const maxTasksPerPlan = 20

type taskReq struct {
	Description string `json:"description" binding:"required,min=1,max=500"`
}

// planReq deliberately allows an empty tasks array so the use case can
// classify it as NO_TASKS instead of a generic binding failure.
type planReq struct {
	Tasks         []taskReq `json:"tasks"`
	AddToCalendar bool      `json:"add_to_calendar"`
}

func (r planReq) validate() error {
	if len(r.Tasks) > maxTasksPerPlan {
		return fmt.Errorf("too many tasks: %d exceeds the limit of %d", len(r.Tasks), maxTasksPerPlan)
	}
	return nil
}

func (r planReq) toInput() planner.PlanDayInput {
	tasks := make([]planner.Task, len(r.Tasks))
	for i, t := range r.Tasks {
		tasks[i] = planner.Task{Description: t.Description}
	}
	return planner.PlanDayInput{
		Tasks:         tasks,
		AddToCalendar: r.AddToCalendar,
	}
}

// --- Response DTOs ---

type scheduledTaskResp struct {
	Task         string `json:"task"`
	Time         string `json:"time"` // "h:mm AM/PM"
	Reason       string `json:"reason"`
	CalendarLink string `json:"calendar_link,omitempty"`
}

type planResp struct {
	Schedule  []scheduledTaskResp `json:"schedule"`
	TaskCount int                 `json:"task_count"`
}

func (h *handler) newPlanResp(out planner.PlanDayOutput) planResp {
	schedule := make([]scheduledTaskResp, len(out.Schedule))
	for i, s := range out.Schedule {
		schedule[i] = scheduledTaskResp{
			Task:         s.Task,
			Time:         s.Time,
			Reason:       s.Reason,
			CalendarLink: s.CalendarLink,
		}
	}
	return planResp{
		Schedule:  schedule,
		TaskCount: out.TaskCount,
	}
}
