package requests

// Payloads for the remote COACH backend. All of them are built at submission
// time from live view-model state, never persisted beforehand, and posted as
// form-encoded fields.

type CoachCreateGoal struct {
	ExtGoalID       string
	ReferenceSystem string
	ReferenceCode   string
	GoalText        string
	TargetDateTS    int64
}

type CoachCreateBPGoal struct {
	ExtGoalID       string
	ReferenceSystem string
	ReferenceCode   string
	SystolicTarget  string
	DiastolicTarget string
	TargetDateTS    int64
}

type CoachUpdateGoal struct {
	ExtGoalID         string
	AchievementStatus string
}

type CoachCounselingReceived struct {
	ExtCounselingID string
	ReferenceSystem string
	ReferenceCode   string
	CounselingText  string
}

type CoachCreateVitals struct {
	Systolic1            string
	Diastolic1           string
	Pulse1               string
	Systolic2            string
	Diastolic2           string
	Pulse2               string
	ReadingDateTS        int64
	FollowedInstructions bool
}
