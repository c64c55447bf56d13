package models

type BlockKind string

const (
	BlockGoal       BlockKind = "goal"
	BlockBPGoal     BlockKind = "bpGoal"
	BlockUpdateGoal BlockKind = "updateGoal"
	BlockCounseling BlockKind = "counseling"
)

// GoalChoice is one predefined action of a multiple-choice goal block. For
// blood-pressure goals the label is parsed once at render time; extraction
// reads the stored pair and never re-parses.
type GoalChoice struct {
	Label     string `json:"label"`
	Systolic  string `json:"systolic,omitempty"`
	Diastolic string `json:"diastolic,omitempty"`
}

const NoChoiceSelected = -1

// GoalBlock is the explicit view-model of one rendered goal or bp-goal
// block. It is the single source of truth between render and extraction;
// the markup is a projection of it, never the other way around.
type GoalBlock struct {
	ID               string       `json:"id"`
	RecommendationID string       `json:"recommendationId"`
	RenderGeneration int64        `json:"renderGeneration"`
	Kind             BlockKind    `json:"kind"`
	ExtGoalID        string       `json:"extGoalId"`
	ReferenceSystem  string       `json:"referenceSystem"`
	ReferenceCode    string       `json:"referenceCode"`
	GroupName        string       `json:"groupName"`
	Choices          []GoalChoice `json:"choices,omitempty"`

	// Interaction state, owned by the state controller.
	SelectedChoice int    `json:"selectedChoice"`
	CustomSelected bool   `json:"customSelected"`
	FieldsEnabled  bool   `json:"fieldsEnabled"`
	FocusField     string `json:"focusField,omitempty"`

	// Input values recorded from the companion fields.
	FreeText        string `json:"freeText,omitempty"`
	CustomSystolic  string `json:"customSystolic,omitempty"`
	CustomDiastolic string `json:"customDiastolic,omitempty"`

	// TargetDate is the resolved date-picker value as unix seconds, 0 when
	// unset. The extractor passes it through without validation; the backend
	// rejects commits with no date.
	TargetDate int64 `json:"targetDate"`
}

// HasChoices reports whether the block renders radio choices rather than the
// single free-text control.
func (b *GoalBlock) HasChoices() bool {
	return len(b.Choices) > 0
}

// UpdateGoalBlock is the view-model of a rendered update-goal block.
type UpdateGoalBlock struct {
	ID               string            `json:"id"`
	RecommendationID string            `json:"recommendationId"`
	RenderGeneration int64             `json:"renderGeneration"`
	ExtGoalID        string            `json:"extGoalId"`
	ReferenceSystem  string            `json:"referenceSystem"`
	ReferenceCode    string            `json:"referenceCode"`
	SelectedStatus   AchievementStatus `json:"selectedStatus"`
}

// CounselingBlock is the view-model of a rendered counseling block.
type CounselingBlock struct {
	ID               string             `json:"id"`
	RecommendationID string             `json:"recommendationId"`
	RenderGeneration int64              `json:"renderGeneration"`
	ExtCounselingID  string             `json:"extCounselingId"`
	ReferenceSystem  string             `json:"referenceSystem"`
	ReferenceCode    string             `json:"referenceCode"`
	Actions          []SuggestionAction `json:"actions"`
}

// Block wraps exactly one of the three block kinds for storage.
type Block struct {
	Kind       BlockKind        `json:"kind"`
	Goal       *GoalBlock       `json:"goal,omitempty"`
	UpdateGoal *UpdateGoalBlock `json:"updateGoal,omitempty"`
	Counseling *CounselingBlock `json:"counseling,omitempty"`
}

func (b *Block) ID() string {
	switch b.Kind {
	case BlockGoal, BlockBPGoal:
		return b.Goal.ID
	case BlockUpdateGoal:
		return b.UpdateGoal.ID
	case BlockCounseling:
		return b.Counseling.ID
	}
	return ""
}

func (b *Block) RecommendationID() string {
	switch b.Kind {
	case BlockGoal, BlockBPGoal:
		return b.Goal.RecommendationID
	case BlockUpdateGoal:
		return b.UpdateGoal.RecommendationID
	case BlockCounseling:
		return b.Counseling.RecommendationID
	}
	return ""
}

func (b *Block) Generation() int64 {
	switch b.Kind {
	case BlockGoal, BlockBPGoal:
		return b.Goal.RenderGeneration
	case BlockUpdateGoal:
		return b.UpdateGoal.RenderGeneration
	case BlockCounseling:
		return b.Counseling.RenderGeneration
	}
	return 0
}

// DatePickerConfig arms the external date-picker widget. Bounds differ by
// context: goal commits start at tomorrow, vitals readings span from the
// first of last month through today.
type DatePickerConfig struct {
	MinDate int64 `json:"minDate"`
	MaxDate int64 `json:"maxDate,omitempty"`
}
