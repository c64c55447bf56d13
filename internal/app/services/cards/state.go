package cards

import (
	"coach-service/internal/app/models"
	"coach-service/internal/pkg/constvars"
	"coach-service/internal/pkg/dto/requests"
	"coach-service/internal/pkg/exceptions"
	"fmt"
	"strconv"
)

// ApplyChoiceSelection moves a goal or bp-goal block to the given choice.
// Selecting the custom choice enables the companion fields and moves focus to
// the first of them; selecting any predefined choice disables them again.
// The effect is confined to the block passed in.
func ApplyChoiceSelection(block *models.GoalBlock, choice string) error {
	if !block.HasChoices() {
		return exceptions.ErrBlockWrongKind(fmt.Errorf("block %s renders no choices", block.ID))
	}

	if choice == requests.SelectionCustom {
		block.SelectedChoice = models.NoChoiceSelected
		block.CustomSelected = true
		block.FieldsEnabled = true
		block.FocusField = firstCompanionField(block.Kind)
		return nil
	}

	index, err := strconv.Atoi(choice)
	if err != nil || index < 0 || index >= len(block.Choices) {
		return exceptions.ErrBlockNoSuchChoice(fmt.Errorf("choice %q on block %s", choice, block.ID))
	}

	block.SelectedChoice = index
	block.CustomSelected = false
	block.FieldsEnabled = false
	block.FocusField = ""
	return nil
}

func firstCompanionField(kind models.BlockKind) string {
	if kind == models.BlockBPGoal {
		return constvars.ClassSystolic
	}
	return constvars.ClassFreetextResponse
}

// RecordGoalInput mirrors posted companion field values into the block.
// Nil fields leave current state untouched; disabled companion fields keep
// their values but extraction ignores them unless the custom choice is
// active.
func RecordGoalInput(block *models.GoalBlock, in *requests.RecordInput) {
	if in.FreeText != nil {
		block.FreeText = *in.FreeText
	}
	if in.Systolic != nil {
		block.CustomSystolic = *in.Systolic
	}
	if in.Diastolic != nil {
		block.CustomDiastolic = *in.Diastolic
	}
	if in.TargetDateTS != nil {
		block.TargetDate = *in.TargetDateTS
	}
}

// RecordStatusSelection moves an update-goal block's select control.
func RecordStatusSelection(block *models.UpdateGoalBlock, status models.AchievementStatus) error {
	if !status.IsValid() {
		return exceptions.ErrBlockNoSuchChoice(fmt.Errorf("achievement status %q on block %s", status, block.ID))
	}
	block.SelectedStatus = status
	return nil
}
