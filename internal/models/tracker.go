package models

// Tracker is a live counter for a single habit
type Tracker struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Count     int    `json:"count"`
	DailyGoal int    `json:"daily_goal"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

// GoalMet reports whether today's count has reached the daily goal.
func (t Tracker) GoalMet() bool {
	return t.Count >= t.DailyGoal
}
