package responses

import "coach-service/internal/app/models"

// RenderedRecommendation is the payload a recommendation block receives after
// an execute or cached fetch: the markup to insert, the handles of every
// interactive block registered for it, and the date-picker arming config.
type RenderedRecommendation struct {
	RecommendationID string                   `json:"recommendationId"`
	RenderGeneration int64                    `json:"renderGeneration"`
	Markup           string                   `json:"markup"`
	BlockIDs         []string                 `json:"blockIds"`
	DatePicker       *models.DatePickerConfig `json:"datePicker,omitempty"`
}

// ApplyGoalsResult lists the external goal IDs the subject has already
// recorded; the page checks any checkbox-type goal input whose
// data-extGoalId matches one of them.
type ApplyGoalsResult struct {
	RecommendationID string   `json:"recommendationId"`
	ExtGoalIDs       []string `json:"extGoalIds"`
}

// RecordedGoal is one previously recorded goal from the COACH backend.
type RecordedGoal struct {
	ExtGoalID string `json:"extGoalId"`
}
