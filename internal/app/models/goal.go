package models

import "strings"

type AchievementStatus string

const (
	AchievementInProgress  AchievementStatus = "IN_PROGRESS"
	AchievementAchieved    AchievementStatus = "ACHIEVED"
	AchievementNotAchieved AchievementStatus = "NOT_ACHIEVED"
)

// AchievementStatuses is the fixed display order of the status select control.
var AchievementStatuses = []AchievementStatus{
	AchievementInProgress,
	AchievementAchieved,
	AchievementNotAchieved,
}

func (s AchievementStatus) IsValid() bool {
	switch s {
	case AchievementInProgress, AchievementAchieved, AchievementNotAchieved:
		return true
	}
	return false
}

// Humanize turns the enum value into its option label: underscores become
// spaces, words are title-cased. IN_PROGRESS -> "In Progress".
func (s AchievementStatus) Humanize() string {
	words := strings.Split(string(s), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
