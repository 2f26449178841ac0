package engine

import (
	"testing"

	"github.com/recuerda-health/recall-backend/pkg/assessment/types"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestScoreQuiz(t *testing.T) {
	items := []types.QuizItem{
		{ID: "i1", Type: types.QUIZ_ITEM_TYPE_YES_NO, Field: types.GT_FIELD_HAS_PEOPLE, Weight: 1},
		{ID: "i2", Type: types.QUIZ_ITEM_TYPE_MULTIPLE_CHOICE, Options: []string{"Luis", "Ana", "Marcos"}, CorrectIndex: 1, Weight: 1},
	}
	groundTruth := map[string]bool{types.GT_FIELD_HAS_PEOPLE: true}

	t.Run("all correct yields full score", func(t *testing.T) {
		score, totalWeight := ScoreQuiz(items, []types.QuizAnswer{
			{ItemID: "i1", YN: boolPtr(true)},
			{ItemID: "i2", OptionIndex: intPtr(1)},
		}, groundTruth)
		if score != 1 {
			t.Errorf("unexpected score: %f", score)
		}
		if totalWeight != 2 {
			t.Errorf("unexpected total weight: %f", totalWeight)
		}
	})

	t.Run("half correct", func(t *testing.T) {
		score, _ := ScoreQuiz(items, []types.QuizAnswer{
			{ItemID: "i1", YN: boolPtr(true)},
			{ItemID: "i2", OptionIndex: intPtr(0)},
		}, groundTruth)
		if score != 0.5 {
			t.Errorf("unexpected score: %f", score)
		}
	})

	t.Run("ground truth takes precedence over yes counts", func(t *testing.T) {
		score, _ := ScoreQuiz(items, []types.QuizAnswer{
			{ItemID: "i1", YN: boolPtr(false)},
		}, map[string]bool{types.GT_FIELD_HAS_PEOPLE: false})
		if score != 1 {
			t.Errorf("no should match negative ground truth, got %f", score)
		}
	})

	t.Run("without ground truth a submitted true counts as correct", func(t *testing.T) {
		score, _ := ScoreQuiz(items, []types.QuizAnswer{
			{ItemID: "i1", YN: boolPtr(true)},
		}, map[string]bool{})
		if score != 1 {
			t.Errorf("unexpected score: %f", score)
		}

		score, _ = ScoreQuiz(items, []types.QuizAnswer{
			{ItemID: "i1", YN: boolPtr(false)},
		}, map[string]bool{})
		if score != 0 {
			t.Errorf("unexpected score: %f", score)
		}
	})

	t.Run("unknown item ids are ignored", func(t *testing.T) {
		score, totalWeight := ScoreQuiz(items, []types.QuizAnswer{
			{ItemID: "missing", YN: boolPtr(true)},
		}, groundTruth)
		if score != 0 || totalWeight != 0 {
			t.Errorf("unexpected result: score=%f totalWeight=%f", score, totalWeight)
		}
	})

	t.Run("weights are respected", func(t *testing.T) {
		weighted := []types.QuizItem{
			{ID: "w1", Type: types.QUIZ_ITEM_TYPE_MULTIPLE_CHOICE, Options: []string{"a", "b"}, CorrectIndex: 0, Weight: 3},
			{ID: "w2", Type: types.QUIZ_ITEM_TYPE_MULTIPLE_CHOICE, Options: []string{"a", "b"}, CorrectIndex: 0, Weight: 1},
		}
		score, totalWeight := ScoreQuiz(weighted, []types.QuizAnswer{
			{ItemID: "w1", OptionIndex: intPtr(0)},
			{ItemID: "w2", OptionIndex: intPtr(1)},
		}, nil)
		if totalWeight != 4 {
			t.Errorf("unexpected total weight: %f", totalWeight)
		}
		if score != 0.75 {
			t.Errorf("unexpected score: %f", score)
		}
	})
}

func TestClassify(t *testing.T) {
	cases := []struct {
		pct  int
		want string
	}{
		{100, CLASSIFICATION_EXCELLENT},
		{85, CLASSIFICATION_EXCELLENT},
		{84, CLASSIFICATION_GOOD},
		{70, CLASSIFICATION_GOOD},
		{69, CLASSIFICATION_NEEDS_ATTENTION},
		{50, CLASSIFICATION_NEEDS_ATTENTION},
		{49, CLASSIFICATION_AT_RISK},
		{0, CLASSIFICATION_AT_RISK},
	}
	for _, c := range cases {
		if got := Classify(c.pct); got != c.want {
			t.Errorf("Classify(%d) = %q, want %q", c.pct, got, c.want)
		}
	}
}

func TestScoreToPct(t *testing.T) {
	cases := []struct {
		score float64
		want  int
	}{
		{1, 100},
		{0.75, 75},
		{2.0 / 3.0, 67},
		{1.0 / 3.0, 33},
		{0, 0},
	}
	for _, c := range cases {
		if got := ScoreToPct(c.score); got != c.want {
			t.Errorf("ScoreToPct(%f) = %d, want %d", c.score, got, c.want)
		}
	}
}
