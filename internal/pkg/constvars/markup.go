package constvars

// Markup contract: class and attribute names the browser-side bindings key
// on. These must stay structurally stable; the extractor and the interaction
// state controller both resolve blocks through them.
const (
	ClassCard                = "card"
	ClassCounselingContainer = "counselingContainer"
	ClassCounseling          = "counseling"
	ClassGoalsContainer      = "goalsContainer"
	ClassGoal                = "goal"
	ClassBPGoal              = "bpGoal"
	ClassLinksContainer      = "linksContainer"
	ClassLink                = "link"
	ClassAction              = "action"
	ClassFreetext            = "freetext"
	ClassFreetextResponse    = "freetextResponse"
	ClassCustom              = "custom"
	ClassCustomResponse      = "customResponse"
	ClassSystolic            = "systolic"
	ClassDiastolic           = "diastolic"
	ClassGoalTargetDate      = "goalTargetDate"
	ClassAchievementStatus   = "achievementStatus"
	ClassCommitToGoalButton  = "commitToGoalButton"
	ClassUpdateGoalButton    = "updateGoalButton"
)

const (
	AttrDataID              = "data-id"
	AttrDataBlockID         = "data-block-id"
	AttrDataReferenceSystem = "data-reference-system"
	AttrDataReferenceCode   = "data-reference-code"
	AttrDataSystolic        = "data-systolic"
	AttrDataDiastolic       = "data-diastolic"
	AttrDataExtGoalID       = "data-extGoalId"
)

const (
	PlaceholderGoalText   = "Describe your goal here"
	PlaceholderSystolic   = "Systolic"
	PlaceholderDiastolic  = "Diastolic"
	PlaceholderSelectDate = "--Select Date--"
	LabelTargetDatePrompt = "When do you want to achieve this goal?"
	LabelAchievement      = "Achievement Status:"
	LabelCommitToGoal     = "Commit to Goal"
	LabelRecordProgress   = "Record Progress"
)
