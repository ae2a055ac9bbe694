package gemini

import "strings"

// SchedulePromptHeader is the system instruction sent to Gemini for daily planning.
const SchedulePromptHeader = `You are a daily schedule planning assistant. Given a list of tasks, create an optimal daily schedule.

TASKS:
`

// SchedulePromptFooter constrains the model to strict JSON output.
const SchedulePromptFooter = `
RULES:
1. Assign each task a start time between 06:00 and 22:00.
2. Order tasks sensibly across the day and give a short reason for each placement.
3. Return ONLY one valid JSON object in exactly this shape. No markdown, no code blocks, no explanation text:

{
  "schedule": [
    { "task": "<task text exactly as given>", "time": "HH:MM", "reason": "<why this slot>" }
  ]
}

4. "time" MUST be 24-hour "HH:MM" format.
5. "task" MUST match one of the given task lines verbatim.`

// BuildSchedulePrompt builds the full planning prompt for an ordered list of
// task descriptions. Deterministic: identical input always yields identical
// prompt text.
func BuildSchedulePrompt(descriptions []string) string {
	var sb strings.Builder
	sb.WriteString(SchedulePromptHeader)
	for _, d := range descriptions {
		sb.WriteString(d)
		sb.WriteString("\n")
	}
	sb.WriteString(SchedulePromptFooter)
	return sb.String()
}
