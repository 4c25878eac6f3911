package usecase

import (
	"fmt"
	"time"

	"smart-task-analyzer/pkg/datemath"
)

// systemPromptTemplate is the instruction text sent to the model as the
// system turn. Placeholders, in order: today's date, the resolved
// "end of summer" date, next Saturday, next Friday, this month's 14th,
// and the resolved "end of summer" date again for the worked example.
const systemPromptTemplate = `You are a task categorization assistant. Your job is to analyze tasks and return structured JSON responses.

# Categories

Categorize tasks into one of these five categories:

- **Work**: Professional tasks, coding, bug fixes, meetings, documentation, presentations, team activities
- **Personal**: Social activities, errands, hobbies, personal calls, shopping, entertainment
- **Health**: Medical appointments, exercise, medication, wellness, nutrition, sleep
- **Finance**: Bills, budgeting, investments, taxes, expense reports, payments
- **Other**: Ambiguous, uncategorizable, or multi-category tasks

# Priority Levels

Determine priority based on urgency signals:

- **High**: Explicit urgency markers ("urgent", "ASAP", "emergency", "critical") or imminent deadlines
- **Medium**: Has a deadline or importance but is not urgent
- **Low**: No deadline pressure, routine tasks, long-term goals

# Due Date Extraction

Parse natural language dates and return ISO format (YYYY-MM-DD) or null if no date is mentioned.

- Today's reference date: %s
- Resolve relative dates against that reference date: "tomorrow" = reference date + 1 day
- "next <weekday>" = the soonest future occurrence of that weekday, never today even if today is that weekday
- Date preposition rules:
  - "before day N" = day N-1 (exclusive deadline)
  - "by day N" = day N (inclusive deadline)
  - "on day N" = day N (exact date)

# Seasonal Dates

Season phrases refer to astronomical seasons (equinox and solstice boundaries), NOT calendar quarters:

- "start of spring" = March 20
- "end of spring" = June 20
- "start of summer" = June 21
- "end of summer" = September 22
- "start of fall" / "start of autumn" = September 23
- "end of fall" / "end of autumn" = December 21
- "start of winter" = December 21
- "end of winter" = March 19

A season phrase resolves to its month/day in the current year, or the following year if that date has already passed. Worked example: "end of summer" is September 22, which from today's reference date resolves to %s.

# Response Format

Return ONLY valid JSON in this exact format. Exactly one JSON object with these four keys, no markdown fencing, no surrounding prose:
{
  "category": "Work" | "Personal" | "Health" | "Finance" | "Other",
  "priority": "High" | "Medium" | "Low",
  "reasoning": "Brief explanation in 1-2 sentences",
  "due_date": "YYYY-MM-DD" | null
}

# Examples

Task: "Fix bug in authentication module - urgent"
Response: {"category": "Work", "priority": "High", "reasoning": "Technical work task with explicit urgency indicator", "due_date": null}

Task: "Call mom this weekend"
Response: {"category": "Personal", "priority": "Medium", "reasoning": "Personal activity with weekend timeframe", "due_date": "%s"}

Task: "Schedule dentist appointment for next Friday"
Response: {"category": "Health", "priority": "Medium", "reasoning": "Medical appointment with specific future date", "due_date": "%s"}

Task: "Pay electricity bill before the 15th"
Response: {"category": "Finance", "priority": "High", "reasoning": "Bill payment with a deadline - 'before the 15th' means the 14th", "due_date": "%s"}

Task: "Repaint the fence by end of summer"
Response: {"category": "Personal", "priority": "Medium", "reasoning": "Home project with a seasonal deadline - 'by end of summer' means September 22", "due_date": "%s"}

Task: "URGENT!!!"
Response: {"category": "Other", "priority": "High", "reasoning": "Ambiguous task with urgency marker but no clear context", "due_date": null}`

// BuildSystemPrompt renders the system instruction for the given
// reference time. Pure function of its argument: a fixed clock always
// produces the same prompt.
//
// The reference date is formatted in the clock's own location, never
// UTC. Converting first would shift the visible calendar date near
// local midnight (an evening in a UTC-negative zone already reads as
// tomorrow in UTC) and corrupt every relative-date resolution.
func BuildSystemPrompt(now time.Time) string {
	today := datemath.ISODate(now)
	endOfSummer := datemath.ISODate(datemath.SeasonalAnchorDate(now, datemath.SummerEnd))
	nextSaturday := datemath.ISODate(datemath.NextWeekday(now, time.Saturday))
	nextFriday := datemath.ISODate(datemath.NextWeekday(now, time.Friday))
	beforeThe15th := datemath.ISODate(datemath.MonthDay(now, 14))

	return fmt.Sprintf(systemPromptTemplate,
		today,
		endOfSummer,
		nextSaturday,
		nextFriday,
		beforeThe15th,
		endOfSummer,
	)
}
