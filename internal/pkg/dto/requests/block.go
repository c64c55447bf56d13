package requests

// SelectionCustom selects the trailing custom/freetext radio of a choice
// block; any other value is the zero-based index of a predefined choice.
const SelectionCustom = "custom"

type ApplySelection struct {
	BlockID string `json:"blockId" validate:"required"`
	Choice  string `json:"choice" validate:"required"`
}

// RecordInput mirrors the companion controls of a block into its view-model.
// Every field is optional; only posted fields overwrite state.
type RecordInput struct {
	BlockID           string  `json:"blockId" validate:"required"`
	FreeText          *string `json:"freeText,omitempty"`
	Systolic          *string `json:"systolic,omitempty"`
	Diastolic         *string `json:"diastolic,omitempty"`
	TargetDateTS      *int64  `json:"targetDateTS,omitempty"`
	AchievementStatus *string `json:"achievementStatus,omitempty" validate:"omitempty,achievement_status"`
}

type CommitGoal struct {
	BlockID string `json:"blockId" validate:"required"`
}

type CommitBPGoal struct {
	BlockID string `json:"blockId" validate:"required"`
}

type UpdateGoal struct {
	BlockID string `json:"blockId" validate:"required"`
}
