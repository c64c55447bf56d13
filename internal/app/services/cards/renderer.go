package cards

import (
	"coach-service/internal/app/models"
	"coach-service/internal/pkg/constvars"
	"coach-service/internal/pkg/utils"
	"fmt"
	"html"
	"strings"

	"github.com/google/uuid"
)

// RenderOutput pairs the markup projection of one recommendation with the
// view-model blocks it was projected from. The blocks are the source of
// truth; the markup is derived from them and never read back.
type RenderOutput struct {
	Markup string
	Blocks []models.Block
}

type renderState struct {
	recommendationID string
	generation       int64
	widgetCounter    int
	blocks           []models.Block
}

// nextWidgetSeq numbers radio groups and widget ids within one render.
// The sequence restarts per render so group names are deterministic.
func (r *renderState) nextWidgetSeq() int {
	seq := r.widgetCounter
	r.widgetCounter++
	return seq
}

// Render maps a card list into markup plus one registered block per
// interactive suggestion. A nil or empty list yields empty markup and no
// blocks. Blood-pressure choice labels are parsed here, once; extraction
// reads the stored pair and never re-parses.
func Render(recommendationID string, generation int64, cards []models.Card) (*RenderOutput, error) {
	out := &RenderOutput{}
	if len(cards) == 0 {
		return out, nil
	}

	state := &renderState{
		recommendationID: recommendationID,
		generation:       generation,
	}

	var b strings.Builder
	for i := range cards {
		err := state.renderCard(&b, &cards[i])
		if err != nil {
			return nil, err
		}
	}

	out.Markup = b.String()
	out.Blocks = state.blocks
	return out, nil
}

func (r *renderState) renderCard(b *strings.Builder, card *models.Card) error {
	fmt.Fprintf(b, "<div class='%s %s'>\n", constvars.ClassCard, html.EscapeString(card.Indicator))
	b.WriteString("<table style='width:100%'><tr><td>\n")
	b.WriteString("<div class='circle'><span>XX</span></div>\n")
	b.WriteString("</td><td>\n")
	b.WriteString("<div class='content'>\n")
	fmt.Fprintf(b, "<span class='summary heading'>%s</span>\n", html.EscapeString(card.Summary))

	if card.Rationale != "" {
		fmt.Fprintf(b, "<span class='rationale'>%s</span>\n", html.EscapeString(card.Rationale))
	}

	if card.Source != nil && card.Source.Label != "" && card.Source.URL != "" {
		b.WriteString("<span class='source'>")
		fmt.Fprintf(b, "<a href='%s' target='_blank' rel='noopener noreferrer'>%s</a>",
			html.EscapeString(card.Source.URL), html.EscapeString(card.Source.Label))
		b.WriteString("</span>\n")
	}

	if len(card.Links) > 0 {
		b.WriteString("<div class='links'>")
		for _, link := range card.Links {
			fmt.Fprintf(b, "<a class='%s' href='%s'>%s</a>\n",
				constvars.ClassLink, html.EscapeString(link.URL), html.EscapeString(link.Label))
		}
		b.WriteString("</div>\n")
	}

	b.WriteString(r.renderCounselingRegion(card.Suggestions))
	b.WriteString("</div>\n")

	b.WriteString("</td><td>\n")

	goalsRegion, err := r.renderGoalsRegion(card.Suggestions)
	if err != nil {
		return err
	}
	b.WriteString(goalsRegion)

	b.WriteString(renderLinksRegion(card.Suggestions))

	b.WriteString("</td></tr></table>\n")
	b.WriteString("</div>\n")
	return nil
}

func (r *renderState) renderCounselingRegion(suggestions []models.Suggestion) string {
	var b strings.Builder
	for i := range suggestions {
		s := &suggestions[i]
		if s.Type != models.SuggestionCounselingLink {
			continue
		}

		block := models.CounselingBlock{
			ID:               uuid.NewString(),
			RecommendationID: r.recommendationID,
			RenderGeneration: r.generation,
			ExtCounselingID:  s.ID,
			ReferenceSystem:  s.References.System,
			ReferenceCode:    s.References.Code,
			Actions:          s.Actions,
		}
		r.blocks = append(r.blocks, models.Block{Kind: models.BlockCounseling, Counseling: &block})

		fmt.Fprintf(&b, "<div class='%s' %s='%s' %s='%s' %s='%s' %s='%s'>",
			constvars.ClassCounseling,
			constvars.AttrDataBlockID, block.ID,
			constvars.AttrDataID, html.EscapeString(s.ID),
			constvars.AttrDataReferenceSystem, html.EscapeString(s.References.System),
			constvars.AttrDataReferenceCode, html.EscapeString(s.References.Code))
		fmt.Fprintf(&b, "<span class='heading'>%s</span>", html.EscapeString(s.Label))
		if len(s.Actions) > 0 {
			b.WriteString("<ul class='actions'>")
			for _, action := range s.Actions {
				fmt.Fprintf(&b, "<li class='%s'><a href='%s'>%s</a></li>",
					constvars.ClassAction, html.EscapeString(action.URL), html.EscapeString(action.Label))
			}
			b.WriteString("</ul>")
		}
		b.WriteString("</div>\n")
	}

	if b.Len() == 0 {
		return ""
	}
	return fmt.Sprintf("<div class='%s'>%s</div>", constvars.ClassCounselingContainer, b.String())
}

func (r *renderState) renderGoalsRegion(suggestions []models.Suggestion) (string, error) {
	var b strings.Builder
	for i := range suggestions {
		s := &suggestions[i]
		switch s.Type {
		case models.SuggestionGoal, models.SuggestionBPGoal:
			err := r.renderGoalBlock(&b, s)
			if err != nil {
				return "", err
			}
		case models.SuggestionUpdateGoal:
			r.renderUpdateGoalBlock(&b, s)
		case models.SuggestionCounselingLink, models.SuggestionLink:
			// Rendered by their own regions.
		default:
			// Unknown variant, render nothing.
		}
	}

	if b.Len() == 0 {
		return "", nil
	}
	return fmt.Sprintf("<div class='%s'>%s</div>", constvars.ClassGoalsContainer, b.String()), nil
}

func (r *renderState) renderGoalBlock(b *strings.Builder, s *models.Suggestion) error {
	kind := models.BlockGoal
	class := constvars.ClassGoal
	if s.Type == models.SuggestionBPGoal {
		kind = models.BlockBPGoal
		class = constvars.ClassBPGoal
	}

	seq := r.nextWidgetSeq()
	block := models.GoalBlock{
		ID:               uuid.NewString(),
		RecommendationID: r.recommendationID,
		RenderGeneration: r.generation,
		Kind:             kind,
		ExtGoalID:        s.ID,
		ReferenceSystem:  s.References.System,
		ReferenceCode:    s.References.Code,
		GroupName:        fmt.Sprintf("action%d", seq),
		SelectedChoice:   models.NoChoiceSelected,
	}
	for _, action := range s.Actions {
		choice := models.GoalChoice{Label: action.Label}
		if kind == models.BlockBPGoal {
			parts, err := utils.ParseBloodPressure(action.Label)
			if err != nil {
				return err
			}
			choice.Systolic = parts.Systolic
			choice.Diastolic = parts.Diastolic
		}
		block.Choices = append(block.Choices, choice)
	}
	r.blocks = append(r.blocks, models.Block{Kind: kind, Goal: &block})

	fmt.Fprintf(b, "<div class='%s' %s='%s' %s='%s' %s='%s' %s='%s' %s='%s'>",
		class,
		constvars.AttrDataBlockID, block.ID,
		constvars.AttrDataID, html.EscapeString(s.ID),
		constvars.AttrDataExtGoalID, html.EscapeString(s.ID),
		constvars.AttrDataReferenceSystem, html.EscapeString(s.References.System),
		constvars.AttrDataReferenceCode, html.EscapeString(s.References.Code))
	fmt.Fprintf(b, "<span class='heading'>%s</span>", html.EscapeString(s.Label))
	b.WriteString("<table><tr>")

	b.WriteString("<td>")
	if kind == models.BlockGoal {
		r.renderGoalChoices(b, &block)
	} else {
		r.renderBPGoalChoices(b, &block)
	}
	b.WriteString("</td>")

	fmt.Fprintf(b, "<td><div class='%s'><span>%s</span></div></td>\n",
		constvars.ClassCommitToGoalButton, constvars.LabelCommitToGoal)

	b.WriteString("</tr><tr>")

	fmt.Fprintf(b, "<td><label for='goalTargetDate%d'>%s</label></td>", seq, constvars.LabelTargetDatePrompt)
	fmt.Fprintf(b, "<td><input id='goalTargetDate%d' type='text' class='%s' placeholder='%s' readOnly/></td>",
		seq, constvars.ClassGoalTargetDate, constvars.PlaceholderSelectDate)

	b.WriteString("</tr></table>")
	b.WriteString("</div>\n")
	return nil
}

func (r *renderState) renderGoalChoices(b *strings.Builder, block *models.GoalBlock) {
	if !block.HasChoices() {
		b.WriteString("<div class='" + constvars.ClassAction + "'>")
		fmt.Fprintf(b, "<input type='text' placeholder='%s' />", constvars.PlaceholderGoalText)
		b.WriteString("</div>\n")
		return
	}

	for i, choice := range block.Choices {
		label := html.EscapeString(choice.Label)
		b.WriteString("<div class='" + constvars.ClassAction + "'>")
		fmt.Fprintf(b, "<input name='%s' type='radio' id='%s_%d' value='%s' />", block.GroupName, block.GroupName, i, label)
		fmt.Fprintf(b, "<label for='%s_%d'>%s</label>", block.GroupName, i, label)
		b.WriteString("</div>\n")
	}

	b.WriteString("<div class='" + constvars.ClassAction + "'>")
	fmt.Fprintf(b, "<input name='%s' type='radio' class='%s' />", block.GroupName, constvars.ClassFreetext)
	fmt.Fprintf(b, "<input type='text' class='%s' placeholder='%s' disabled/>",
		constvars.ClassFreetextResponse, constvars.PlaceholderGoalText)
	b.WriteString("</div>")
}

func (r *renderState) renderBPGoalChoices(b *strings.Builder, block *models.GoalBlock) {
	if !block.HasChoices() {
		b.WriteString("<div class='" + constvars.ClassAction + "'>")
		fmt.Fprintf(b, "<input type='text' class='%s' placeholder='%s' /> /", constvars.ClassSystolic, constvars.PlaceholderSystolic)
		fmt.Fprintf(b, "<input type='text' class='%s' placeholder='%s' />", constvars.ClassDiastolic, constvars.PlaceholderDiastolic)
		b.WriteString("</div>\n")
		return
	}

	for i, choice := range block.Choices {
		label := html.EscapeString(choice.Label)
		b.WriteString("<div class='" + constvars.ClassAction + "'>")
		fmt.Fprintf(b, "<input name='%s' type='radio' id='%s_%d' value='%s' %s='%s' %s='%s' />",
			block.GroupName, block.GroupName, i, label,
			constvars.AttrDataSystolic, choice.Systolic,
			constvars.AttrDataDiastolic, choice.Diastolic)
		fmt.Fprintf(b, "<label for='%s_%d'>%s</label></div>\n", block.GroupName, i, label)
	}

	b.WriteString("<div class='" + constvars.ClassAction + "'>")
	fmt.Fprintf(b, "<input name='%s' type='radio' class='%s' />", block.GroupName, constvars.ClassCustom)
	fmt.Fprintf(b, "<input type='text' class='%s %s' placeholder='%s' disabled/> / ",
		constvars.ClassCustomResponse, constvars.ClassSystolic, constvars.PlaceholderSystolic)
	fmt.Fprintf(b, "<input type='text' class='%s %s' placeholder='%s' disabled/>",
		constvars.ClassCustomResponse, constvars.ClassDiastolic, constvars.PlaceholderDiastolic)
	b.WriteString("</div>\n")
}

func (r *renderState) renderUpdateGoalBlock(b *strings.Builder, s *models.Suggestion) {
	currentStatus := models.AchievementInProgress
	if s.Goal != nil {
		currentStatus = s.Goal.AchievementStatus
	}

	seq := r.nextWidgetSeq()
	block := models.UpdateGoalBlock{
		ID:               uuid.NewString(),
		RecommendationID: r.recommendationID,
		RenderGeneration: r.generation,
		ExtGoalID:        s.ID,
		ReferenceSystem:  s.References.System,
		ReferenceCode:    s.References.Code,
		SelectedStatus:   currentStatus,
	}
	r.blocks = append(r.blocks, models.Block{Kind: models.BlockUpdateGoal, UpdateGoal: &block})

	fmt.Fprintf(b, "<div class='%s' %s='%s' %s='%s' %s='%s' %s='%s'>",
		constvars.ClassGoal,
		constvars.AttrDataBlockID, block.ID,
		constvars.AttrDataID, html.EscapeString(s.ID),
		constvars.AttrDataReferenceSystem, html.EscapeString(s.References.System),
		constvars.AttrDataReferenceCode, html.EscapeString(s.References.Code))
	fmt.Fprintf(b, "<span class='heading'>%s</span>", html.EscapeString(s.Label))
	b.WriteString("<table><tr><td>")

	fmt.Fprintf(b, "<div><label for='achievementStatus%d'>%s</label> <select id='achievementStatus%d' class='%s'>",
		seq, constvars.LabelAchievement, seq, constvars.ClassAchievementStatus)
	for _, status := range models.AchievementStatuses {
		fmt.Fprintf(b, "<option value='%s'", status)
		if status == currentStatus {
			b.WriteString(" selected")
		}
		fmt.Fprintf(b, ">%s</option>\n", status.Humanize())
	}
	b.WriteString("</select></div>\n")

	b.WriteString("</td><td>")
	fmt.Fprintf(b, "<div class='%s'><span>%s</span></div></td>\n",
		constvars.ClassUpdateGoalButton, constvars.LabelRecordProgress)
	b.WriteString("</tr></table>")
	b.WriteString("</div>\n")
}

func renderLinksRegion(suggestions []models.Suggestion) string {
	var b strings.Builder
	for i := range suggestions {
		s := &suggestions[i]
		if s.Type != models.SuggestionLink {
			continue
		}

		b.WriteString("<div class='" + constvars.ClassLink + "'>")
		fmt.Fprintf(&b, "<span class='heading'>%s</span>", html.EscapeString(s.Label))
		b.WriteString("<table><tbody>")
		for _, action := range s.Actions {
			b.WriteString("<tr><td>")
			fmt.Fprintf(&b, "<a href='%s'>%s</a>", html.EscapeString(action.URL), html.EscapeString(action.Label))
			b.WriteString("</td></tr>")
		}
		b.WriteString("</tbody></table>")
		b.WriteString("</div>\n")
	}

	if b.Len() == 0 {
		return ""
	}
	return fmt.Sprintf("<div class='%s'>%s</div>", constvars.ClassLinksContainer, b.String())
}
