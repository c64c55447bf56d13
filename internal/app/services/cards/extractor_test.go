package cards

import (
	"coach-service/internal/app/models"
	"coach-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractGoalText(t *testing.T) {
	t.Run("Free-text block returns its input value", func(t *testing.T) {
		block := &models.GoalBlock{Kind: models.BlockGoal, SelectedChoice: models.NoChoiceSelected, FreeText: "Walk daily"}
		assert.Equal(t, "Walk daily", ExtractGoalText(block))
	})

	t.Run("Custom choice returns companion field value", func(t *testing.T) {
		block := choiceGoalBlock(models.BlockGoal)
		require.NoError(t, ApplyChoiceSelection(block, requests.SelectionCustom))
		block.FreeText = "My own plan"
		assert.Equal(t, "My own plan", ExtractGoalText(block))
	})

	t.Run("Predefined choice returns its own label", func(t *testing.T) {
		block := choiceGoalBlock(models.BlockGoal)
		require.NoError(t, ApplyChoiceSelection(block, "0"))
		block.FreeText = "stale companion text"
		assert.Equal(t, "Walk daily", ExtractGoalText(block))
	})

	t.Run("No selection yields empty text", func(t *testing.T) {
		block := choiceGoalBlock(models.BlockGoal)
		assert.Empty(t, ExtractGoalText(block))
	})
}

func TestExtractBPTarget(t *testing.T) {
	bpBlock := func() *models.GoalBlock {
		return &models.GoalBlock{
			ID:             "bp-1",
			Kind:           models.BlockBPGoal,
			SelectedChoice: models.NoChoiceSelected,
			Choices: []models.GoalChoice{
				{Label: "140/90", Systolic: "140", Diastolic: "90"},
				{Label: "130/85", Systolic: "130", Diastolic: "85"},
			},
		}
	}

	t.Run("Predefined choice reads the stored pair without re-parsing", func(t *testing.T) {
		block := bpBlock()
		require.NoError(t, ApplyChoiceSelection(block, "1"))
		systolic, diastolic := ExtractBPTarget(block)
		assert.Equal(t, "130", systolic)
		assert.Equal(t, "85", diastolic)
	})

	t.Run("Custom choice reads the companion fields", func(t *testing.T) {
		block := bpBlock()
		require.NoError(t, ApplyChoiceSelection(block, requests.SelectionCustom))
		block.CustomSystolic = "125"
		block.CustomDiastolic = "80"
		systolic, diastolic := ExtractBPTarget(block)
		assert.Equal(t, "125", systolic)
		assert.Equal(t, "80", diastolic)
	})

	t.Run("Free-form block reads the standalone fields", func(t *testing.T) {
		block := &models.GoalBlock{
			Kind:            models.BlockBPGoal,
			SelectedChoice:  models.NoChoiceSelected,
			CustomSystolic:  "118",
			CustomDiastolic: "76",
		}
		systolic, diastolic := ExtractBPTarget(block)
		assert.Equal(t, "118", systolic)
		assert.Equal(t, "76", diastolic)
	})
}

func TestBuildCommitPayloads(t *testing.T) {
	t.Run("Goal payload carries block identity and target date", func(t *testing.T) {
		block := &models.GoalBlock{
			Kind:            models.BlockGoal,
			ExtGoalID:       "g1",
			ReferenceSystem: "sys",
			ReferenceCode:   "code",
			SelectedChoice:  models.NoChoiceSelected,
			FreeText:        "Walk daily",
			TargetDate:      1710028800,
		}
		payload := BuildGoalCommitData(block)
		assert.Equal(t, "g1", payload.ExtGoalID)
		assert.Equal(t, "sys", payload.ReferenceSystem)
		assert.Equal(t, "code", payload.ReferenceCode)
		assert.Equal(t, "Walk daily", payload.GoalText)
		assert.Equal(t, int64(1710028800), payload.TargetDateTS)
	})

	t.Run("Update payload carries the selected status", func(t *testing.T) {
		block := &models.UpdateGoalBlock{ExtGoalID: "g2", SelectedStatus: models.AchievementAchieved}
		payload := BuildGoalUpdateData(block)
		assert.Equal(t, "g2", payload.ExtGoalID)
		assert.Equal(t, "ACHIEVED", payload.AchievementStatus)
	})
}

func TestBuildCounselingData(t *testing.T) {
	block := &models.CounselingBlock{
		ID:              "c-1",
		ExtCounselingID: "counsel-1",
		ReferenceSystem: "sys",
		ReferenceCode:   "code",
		Actions: []models.SuggestionAction{
			{Label: "Read the article", URL: "/article"},
			{Label: "Watch the video", URL: "/video"},
		},
	}

	t.Run("Counseling text is the clicked action's literal text", func(t *testing.T) {
		payload, err := BuildCounselingData(block, 1)
		require.NoError(t, err)
		assert.Equal(t, "counsel-1", payload.ExtCounselingID)
		assert.Equal(t, "Watch the video", payload.CounselingText)
	})

	t.Run("Out-of-range action is rejected", func(t *testing.T) {
		_, err := BuildCounselingData(block, 2)
		assert.Error(t, err)
		_, err = BuildCounselingData(block, -1)
		assert.Error(t, err)
	})
}
