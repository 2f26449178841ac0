package engine

import (
	"math"

	"github.com/recuerda-health/recall-backend/pkg/assessment/types"
)

const (
	CLASSIFICATION_EXCELLENT       = "Excellent"
	CLASSIFICATION_GOOD            = "Good"
	CLASSIFICATION_NEEDS_ATTENTION = "Needs Attention"
	CLASSIFICATION_AT_RISK         = "At Risk"
)

// ScoreQuiz computes the weighted score of submitted answers against the
// stored items. groundTruth maps yes/no field names to the caregiver's
// answer; when a field has no entry, a submitted true alone counts as
// correct.
func ScoreQuiz(items []types.QuizItem, answers []types.QuizAnswer, groundTruth map[string]bool) (score float64, totalWeight float64) {
	itemLookup := map[string]types.QuizItem{}
	for _, item := range items {
		itemLookup[item.ID] = item
	}

	correct := 0.0
	for _, answer := range answers {
		item, ok := itemLookup[answer.ItemID]
		if !ok {
			continue
		}
		totalWeight += item.Weight
		if isAnswerCorrect(item, answer, groundTruth) {
			correct += item.Weight
		}
	}

	if totalWeight <= 0 {
		return 0, totalWeight
	}
	return correct / totalWeight, totalWeight
}

func isAnswerCorrect(item types.QuizItem, answer types.QuizAnswer, groundTruth map[string]bool) bool {
	switch item.Type {
	case types.QUIZ_ITEM_TYPE_MULTIPLE_CHOICE:
		return answer.OptionIndex != nil && *answer.OptionIndex == item.CorrectIndex
	case types.QUIZ_ITEM_TYPE_YES_NO:
		if answer.YN == nil {
			return false
		}
		if expected, hasGT := groundTruth[item.Field]; hasGT {
			return *answer.YN == expected
		}
		return *answer.YN
	}
	return false
}

// ScoreToPct expresses a 0..1 score as a percentage rounded to the
// nearest integer.
func ScoreToPct(score float64) int {
	return int(math.Round(score * 100))
}

// Classify maps a rounded score percentage onto its qualitative band.
func Classify(scorePct int) string {
	switch {
	case scorePct >= 85:
		return CLASSIFICATION_EXCELLENT
	case scorePct >= 70:
		return CLASSIFICATION_GOOD
	case scorePct >= 50:
		return CLASSIFICATION_NEEDS_ATTENTION
	default:
		return CLASSIFICATION_AT_RISK
	}
}

// GroundTruthLookup builds the field name to boolean lookup from a
// photo's caregiver answers.
func GroundTruthLookup(caregiverAnswers []types.CaregiverAnswer) map[string]bool {
	lookup := map[string]bool{}
	for _, ca := range caregiverAnswers {
		lookup[ca.ItemID] = ca.YN
	}
	return lookup
}
