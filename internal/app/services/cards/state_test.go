package cards

import (
	"coach-service/internal/app/models"
	"coach-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func choiceGoalBlock(kind models.BlockKind) *models.GoalBlock {
	return &models.GoalBlock{
		ID:             "block-1",
		Kind:           kind,
		GroupName:      "action0",
		SelectedChoice: models.NoChoiceSelected,
		Choices: []models.GoalChoice{
			{Label: "Walk daily"},
			{Label: "Swim weekly"},
		},
	}
}

func TestApplyChoiceSelection(t *testing.T) {
	t.Run("Custom choice enables fields and focuses the first", func(t *testing.T) {
		block := choiceGoalBlock(models.BlockGoal)
		err := ApplyChoiceSelection(block, requests.SelectionCustom)
		require.NoError(t, err)
		assert.True(t, block.CustomSelected)
		assert.True(t, block.FieldsEnabled)
		assert.Equal(t, "freetextResponse", block.FocusField)
		assert.Equal(t, models.NoChoiceSelected, block.SelectedChoice)
	})

	t.Run("Custom choice on a bp block focuses the systolic field", func(t *testing.T) {
		block := choiceGoalBlock(models.BlockBPGoal)
		err := ApplyChoiceSelection(block, requests.SelectionCustom)
		require.NoError(t, err)
		assert.Equal(t, "systolic", block.FocusField)
	})

	t.Run("Predefined choice disables fields again", func(t *testing.T) {
		block := choiceGoalBlock(models.BlockGoal)
		require.NoError(t, ApplyChoiceSelection(block, requests.SelectionCustom))
		require.NoError(t, ApplyChoiceSelection(block, "1"))
		assert.False(t, block.CustomSelected)
		assert.False(t, block.FieldsEnabled)
		assert.Empty(t, block.FocusField)
		assert.Equal(t, 1, block.SelectedChoice)
	})

	t.Run("Re-evaluated on every change", func(t *testing.T) {
		block := choiceGoalBlock(models.BlockGoal)
		require.NoError(t, ApplyChoiceSelection(block, "0"))
		require.NoError(t, ApplyChoiceSelection(block, requests.SelectionCustom))
		assert.True(t, block.FieldsEnabled)
		require.NoError(t, ApplyChoiceSelection(block, "0"))
		assert.False(t, block.FieldsEnabled)
	})

	t.Run("Sibling blocks are untouched", func(t *testing.T) {
		block := choiceGoalBlock(models.BlockGoal)
		sibling := choiceGoalBlock(models.BlockGoal)
		sibling.ID = "block-2"

		require.NoError(t, ApplyChoiceSelection(block, requests.SelectionCustom))
		assert.False(t, sibling.FieldsEnabled)
		assert.False(t, sibling.CustomSelected)
	})

	t.Run("Out-of-range choice is rejected", func(t *testing.T) {
		block := choiceGoalBlock(models.BlockGoal)
		assert.Error(t, ApplyChoiceSelection(block, "5"))
		assert.Error(t, ApplyChoiceSelection(block, "-1"))
		assert.Error(t, ApplyChoiceSelection(block, "walk"))
	})

	t.Run("Free-text block has no choices to select", func(t *testing.T) {
		block := &models.GoalBlock{ID: "block-1", Kind: models.BlockGoal, SelectedChoice: models.NoChoiceSelected}
		assert.Error(t, ApplyChoiceSelection(block, requests.SelectionCustom))
	})
}

func TestRecordGoalInput(t *testing.T) {
	t.Run("Only posted fields overwrite state", func(t *testing.T) {
		block := choiceGoalBlock(models.BlockGoal)
		block.FreeText = "keep me"

		date := int64(1710028800)
		RecordGoalInput(block, &requests.RecordInput{TargetDateTS: &date})
		assert.Equal(t, "keep me", block.FreeText)
		assert.Equal(t, date, block.TargetDate)
	})

	t.Run("Companion values land on the block", func(t *testing.T) {
		block := choiceGoalBlock(models.BlockBPGoal)
		systolic := "132"
		diastolic := "84"
		RecordGoalInput(block, &requests.RecordInput{Systolic: &systolic, Diastolic: &diastolic})
		assert.Equal(t, "132", block.CustomSystolic)
		assert.Equal(t, "84", block.CustomDiastolic)
	})
}

func TestRecordStatusSelection(t *testing.T) {
	block := &models.UpdateGoalBlock{ID: "up-1", SelectedStatus: models.AchievementInProgress}

	t.Run("Valid status is applied", func(t *testing.T) {
		err := RecordStatusSelection(block, models.AchievementNotAchieved)
		require.NoError(t, err)
		assert.Equal(t, models.AchievementNotAchieved, block.SelectedStatus)
	})

	t.Run("Unknown status is rejected", func(t *testing.T) {
		err := RecordStatusSelection(block, models.AchievementStatus("DONE"))
		assert.Error(t, err)
		assert.Equal(t, models.AchievementNotAchieved, block.SelectedStatus)
	})
}
