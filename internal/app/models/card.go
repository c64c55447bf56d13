package models

// Card is one recommendation record returned by the COACH backend. Cards are
// immutable once rendered; the only mutation is removal of a contained block
// after a successful commit.
type Card struct {
	ID          string       `json:"id"`
	Indicator   string       `json:"indicator"`
	Summary     string       `json:"summary"`
	Rationale   string       `json:"rationale,omitempty"`
	Source      *CardSource  `json:"source,omitempty"`
	Links       []CardLink   `json:"links,omitempty"`
	Suggestions []Suggestion `json:"suggestions"`
}

type CardSource struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type CardLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type SuggestionType string

const (
	SuggestionCounselingLink SuggestionType = "counseling-link"
	SuggestionGoal           SuggestionType = "goal"
	SuggestionBPGoal         SuggestionType = "bp-goal"
	SuggestionUpdateGoal     SuggestionType = "update-goal"
	SuggestionLink           SuggestionType = "suggestion-link"
)

// Suggestion is a tagged union discriminated by Type. Unknown types are
// skipped by every renderer; new variants may appear before this service is
// updated and must not break the page.
type Suggestion struct {
	Type       SuggestionType     `json:"type"`
	ID         string             `json:"id"`
	Label      string             `json:"label"`
	References References         `json:"references"`
	Actions    []SuggestionAction `json:"actions,omitempty"`
	Goal       *SuggestionGoalState `json:"goal,omitempty"`
}

type SuggestionAction struct {
	Label string `json:"label"`
	URL   string `json:"url,omitempty"`
}

type References struct {
	System string `json:"system"`
	Code   string `json:"code"`
}

// SuggestionGoalState carries the current state of an existing goal for the
// update-goal variant.
type SuggestionGoalState struct {
	AchievementStatus AchievementStatus `json:"achievementStatus"`
}
