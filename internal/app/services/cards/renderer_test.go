package cards

import (
	"coach-service/internal/app/models"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmptyInput(t *testing.T) {
	t.Run("Nil card list", func(t *testing.T) {
		out, err := Render("rec-1", 1, nil)
		assert.NoError(t, err)
		assert.Empty(t, out.Markup)
		assert.Empty(t, out.Blocks)
	})

	t.Run("Empty card list", func(t *testing.T) {
		out, err := Render("rec-1", 1, []models.Card{})
		assert.NoError(t, err)
		assert.Empty(t, out.Markup)
	})
}

func TestRenderRegions(t *testing.T) {
	card := models.Card{
		ID:        "card-1",
		Indicator: "warning",
		Summary:   "Blood pressure trending high",
		Rationale: "Readings above goal for two weeks",
		Source:    &models.CardSource{Label: "Guidelines", URL: "https://example.org/guide"},
		Suggestions: []models.Suggestion{
			{
				Type:       models.SuggestionCounselingLink,
				ID:         "counsel-1",
				Label:      "Learn about sodium",
				References: models.References{System: "sys", Code: "c1"},
				Actions:    []models.SuggestionAction{{Label: "Read the article", URL: "/article"}},
			},
			{
				Type:       models.SuggestionGoal,
				ID:         "goal-1",
				Label:      "Set an exercise goal",
				References: models.References{System: "sys", Code: "g1"},
			},
		},
	}

	out, err := Render("rec-1", 7, []models.Card{card})
	require.NoError(t, err)

	t.Run("Known variants render their labels", func(t *testing.T) {
		assert.Contains(t, out.Markup, "Learn about sodium")
		assert.Contains(t, out.Markup, "Set an exercise goal")
		assert.Contains(t, out.Markup, "Blood pressure trending high")
	})

	t.Run("Empty regions emit no wrapper", func(t *testing.T) {
		assert.NotContains(t, out.Markup, "linksContainer")
	})

	t.Run("Present regions emit exactly one wrapper", func(t *testing.T) {
		assert.Equal(t, 1, strings.Count(out.Markup, "counselingContainer"))
		assert.Equal(t, 1, strings.Count(out.Markup, "goalsContainer"))
	})

	t.Run("One block per interactive suggestion", func(t *testing.T) {
		require.Len(t, out.Blocks, 2)
		assert.Equal(t, models.BlockCounseling, out.Blocks[0].Kind)
		assert.Equal(t, models.BlockGoal, out.Blocks[1].Kind)
	})

	t.Run("Blocks carry recommendation and generation", func(t *testing.T) {
		for i := range out.Blocks {
			assert.Equal(t, "rec-1", out.Blocks[i].RecommendationID())
			assert.Equal(t, int64(7), out.Blocks[i].Generation())
		}
	})
}

func TestRenderUnknownVariantSkipped(t *testing.T) {
	card := models.Card{
		ID:      "card-1",
		Summary: "summary",
		Suggestions: []models.Suggestion{
			{Type: "shiny-new-variant", ID: "x", Label: "Should not appear"},
		},
	}

	out, err := Render("rec-1", 1, []models.Card{card})
	require.NoError(t, err)
	assert.NotContains(t, out.Markup, "Should not appear")
	assert.Empty(t, out.Blocks)
	assert.NotContains(t, out.Markup, "goalsContainer")
	assert.NotContains(t, out.Markup, "counselingContainer")
	assert.NotContains(t, out.Markup, "linksContainer")
}

func TestRenderGoalChoices(t *testing.T) {
	t.Run("Free-text goal renders single input", func(t *testing.T) {
		card := models.Card{Suggestions: []models.Suggestion{
			{Type: models.SuggestionGoal, ID: "g1", Label: "Free goal"},
		}}
		out, err := Render("rec-1", 1, []models.Card{card})
		require.NoError(t, err)
		require.Len(t, out.Blocks, 1)
		assert.False(t, out.Blocks[0].Goal.HasChoices())
		assert.Contains(t, out.Markup, "Describe your goal here")
		assert.NotContains(t, out.Markup, "type='radio'")
	})

	t.Run("Choice goal renders one radio per action plus custom", func(t *testing.T) {
		card := models.Card{Suggestions: []models.Suggestion{
			{
				Type:  models.SuggestionGoal,
				ID:    "g1",
				Label: "Pick a goal",
				Actions: []models.SuggestionAction{
					{Label: "Walk daily"},
					{Label: "Swim weekly"},
				},
			},
		}}
		out, err := Render("rec-1", 1, []models.Card{card})
		require.NoError(t, err)
		assert.Equal(t, 3, strings.Count(out.Markup, "type='radio'"))
		assert.Contains(t, out.Markup, "Walk daily")
		assert.Contains(t, out.Markup, "Swim weekly")
		assert.Contains(t, out.Markup, "class='freetextResponse'")
		assert.Contains(t, out.Markup, "disabled")
	})

	t.Run("Radio group names are deterministic per render", func(t *testing.T) {
		suggestion := models.Suggestion{
			Type:    models.SuggestionGoal,
			ID:      "g1",
			Label:   "Pick a goal",
			Actions: []models.SuggestionAction{{Label: "Walk daily"}},
		}
		card := models.Card{Suggestions: []models.Suggestion{suggestion, suggestion}}
		out, err := Render("rec-1", 1, []models.Card{card})
		require.NoError(t, err)
		require.Len(t, out.Blocks, 2)
		assert.Equal(t, "action0", out.Blocks[0].Goal.GroupName)
		assert.Equal(t, "action1", out.Blocks[1].Goal.GroupName)
	})

	t.Run("Date control is always appended", func(t *testing.T) {
		card := models.Card{Suggestions: []models.Suggestion{
			{Type: models.SuggestionGoal, ID: "g1", Label: "Free goal"},
		}}
		out, err := Render("rec-1", 1, []models.Card{card})
		require.NoError(t, err)
		assert.Contains(t, out.Markup, "class='goalTargetDate'")
		assert.Contains(t, out.Markup, "When do you want to achieve this goal?")
		assert.Contains(t, out.Markup, "readOnly")
	})
}

func TestRenderBPGoal(t *testing.T) {
	t.Run("Choice labels are parsed once at render time", func(t *testing.T) {
		card := models.Card{Suggestions: []models.Suggestion{
			{
				Type:  models.SuggestionBPGoal,
				ID:    "bp1",
				Label: "Pick a target",
				Actions: []models.SuggestionAction{
					{Label: "140/90"},
					{Label: "130/85"},
				},
			},
		}}
		out, err := Render("rec-1", 1, []models.Card{card})
		require.NoError(t, err)
		require.Len(t, out.Blocks, 1)

		block := out.Blocks[0].Goal
		require.Len(t, block.Choices, 2)
		assert.Equal(t, "130", block.Choices[1].Systolic)
		assert.Equal(t, "85", block.Choices[1].Diastolic)
		assert.Contains(t, out.Markup, "data-systolic='140'")
		assert.Contains(t, out.Markup, "data-diastolic='90'")
	})

	t.Run("Unparseable choice label fails the render", func(t *testing.T) {
		card := models.Card{Suggestions: []models.Suggestion{
			{
				Type:    models.SuggestionBPGoal,
				ID:      "bp1",
				Label:   "Pick a target",
				Actions: []models.SuggestionAction{{Label: "lower it a bit"}},
			},
		}}
		_, err := Render("rec-1", 1, []models.Card{card})
		assert.Error(t, err)
	})

	t.Run("Free-form variant renders two fields", func(t *testing.T) {
		card := models.Card{Suggestions: []models.Suggestion{
			{Type: models.SuggestionBPGoal, ID: "bp1", Label: "Your own target"},
		}}
		out, err := Render("rec-1", 1, []models.Card{card})
		require.NoError(t, err)
		assert.Contains(t, out.Markup, "class='systolic'")
		assert.Contains(t, out.Markup, "class='diastolic'")
	})
}

func TestRenderUpdateGoal(t *testing.T) {
	card := models.Card{Suggestions: []models.Suggestion{
		{
			Type:       models.SuggestionUpdateGoal,
			ID:         "up1",
			Label:      "How is it going?",
			References: models.References{System: "sys", Code: "u1"},
			Goal:       &models.SuggestionGoalState{AchievementStatus: models.AchievementAchieved},
		},
	}}

	out, err := Render("rec-1", 1, []models.Card{card})
	require.NoError(t, err)

	t.Run("All three statuses in fixed order", func(t *testing.T) {
		inProgress := strings.Index(out.Markup, "value='IN_PROGRESS'")
		achieved := strings.Index(out.Markup, "value='ACHIEVED'")
		notAchieved := strings.Index(out.Markup, "value='NOT_ACHIEVED'")
		assert.True(t, inProgress >= 0 && inProgress < achieved && achieved < notAchieved)
	})

	t.Run("Current status is pre-selected", func(t *testing.T) {
		assert.Contains(t, out.Markup, "value='ACHIEVED' selected")
	})

	t.Run("Options show humanized labels", func(t *testing.T) {
		assert.Contains(t, out.Markup, ">In Progress</option>")
		assert.Contains(t, out.Markup, ">Not Achieved</option>")
	})

	t.Run("Block mirrors the pre-selected status", func(t *testing.T) {
		require.Len(t, out.Blocks, 1)
		assert.Equal(t, models.AchievementAchieved, out.Blocks[0].UpdateGoal.SelectedStatus)
	})
}

func TestRenderLinksRegion(t *testing.T) {
	card := models.Card{Suggestions: []models.Suggestion{
		{
			Type:  models.SuggestionLink,
			ID:    "l1",
			Label: "More reading",
			Actions: []models.SuggestionAction{
				{Label: "DASH diet", URL: "/dash"},
			},
		},
	}}

	out, err := Render("rec-1", 1, []models.Card{card})
	require.NoError(t, err)
	assert.Contains(t, out.Markup, "linksContainer")
	assert.Contains(t, out.Markup, "DASH diet")
	assert.Empty(t, out.Blocks, "plain links register no interactive block")
}
