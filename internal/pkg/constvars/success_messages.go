package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Recommendation messages
	RecommendationExecuteSuccess = "recommendation executed successfully"
	RecommendationCachedSuccess  = "cached recommendation fetched successfully"
	RecommendationApplyGoals     = "recorded goals applied successfully"

	// Block messages
	SelectionAppliedSuccess = "selection applied"
	InputRecordedSuccess    = "input recorded"

	// Goal messages
	GoalCommittedSuccess   = "goal committed successfully"
	BPGoalCommittedSuccess = "blood pressure goal committed successfully"
	GoalUpdatedSuccess     = "goal progress recorded successfully"

	// Counseling messages
	CounselingRecordedSuccess = "counseling receipt recorded"

	// Vitals messages
	VitalsCreatedSuccess = "reading recorded successfully"
)
