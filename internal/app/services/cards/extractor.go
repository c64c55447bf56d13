package cards

import (
	"coach-service/internal/app/models"
	"coach-service/internal/pkg/dto/requests"
	"coach-service/internal/pkg/exceptions"
	"fmt"
)

// The extractor is the inverse of the renderer for the input side: it reads
// a block's view-model back into the payload the backend expects. No field
// is validated here; an empty selection or missing date is the backend's
// rejection to make.

// ExtractGoalText resolves the committed goal text. Free-text blocks return
// the single input's value. Choice blocks return the companion field when the
// custom choice is active, otherwise the selected choice's own label.
func ExtractGoalText(block *models.GoalBlock) string {
	if !block.HasChoices() {
		return block.FreeText
	}
	if block.CustomSelected {
		return block.FreeText
	}
	if block.SelectedChoice != models.NoChoiceSelected {
		return block.Choices[block.SelectedChoice].Label
	}
	return ""
}

// ExtractBPTarget resolves the committed systolic/diastolic pair. Predefined
// choices carry their pair from render time, so no string is re-parsed here.
func ExtractBPTarget(block *models.GoalBlock) (string, string) {
	if !block.HasChoices() {
		return block.CustomSystolic, block.CustomDiastolic
	}
	if block.CustomSelected {
		return block.CustomSystolic, block.CustomDiastolic
	}
	if block.SelectedChoice != models.NoChoiceSelected {
		choice := block.Choices[block.SelectedChoice]
		return choice.Systolic, choice.Diastolic
	}
	return "", ""
}

func BuildGoalCommitData(block *models.GoalBlock) *requests.CoachCreateGoal {
	return &requests.CoachCreateGoal{
		ExtGoalID:       block.ExtGoalID,
		ReferenceSystem: block.ReferenceSystem,
		ReferenceCode:   block.ReferenceCode,
		GoalText:        ExtractGoalText(block),
		TargetDateTS:    block.TargetDate,
	}
}

func BuildBPGoalCommitData(block *models.GoalBlock) *requests.CoachCreateBPGoal {
	systolic, diastolic := ExtractBPTarget(block)
	return &requests.CoachCreateBPGoal{
		ExtGoalID:       block.ExtGoalID,
		ReferenceSystem: block.ReferenceSystem,
		ReferenceCode:   block.ReferenceCode,
		SystolicTarget:  systolic,
		DiastolicTarget: diastolic,
		TargetDateTS:    block.TargetDate,
	}
}

func BuildGoalUpdateData(block *models.UpdateGoalBlock) *requests.CoachUpdateGoal {
	return &requests.CoachUpdateGoal{
		ExtGoalID:         block.ExtGoalID,
		AchievementStatus: string(block.SelectedStatus),
	}
}

// BuildCounselingData records which action link was followed; the counseling
// text is the literal visible text of that link.
func BuildCounselingData(block *models.CounselingBlock, actionIndex int) (*requests.CoachCounselingReceived, error) {
	if actionIndex < 0 || actionIndex >= len(block.Actions) {
		return nil, exceptions.ErrBlockNoSuchAction(fmt.Errorf("action %d on block %s", actionIndex, block.ID))
	}
	return &requests.CoachCounselingReceived{
		ExtCounselingID: block.ExtCounselingID,
		ReferenceSystem: block.ReferenceSystem,
		ReferenceCode:   block.ReferenceCode,
		CounselingText:  block.Actions[actionIndex].Label,
	}, nil
}
