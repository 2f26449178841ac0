package engine

import (
	"testing"

	"github.com/recuerda-health/recall-backend/pkg/assessment/types"
)

func TestBuildQuizItems(t *testing.T) {
	t.Run("photo with people pool and one caregiver answer", func(t *testing.T) {
		photo := types.Photo{
			Data: map[string]interface{}{
				"people": []interface{}{"Ana", "Luis", "Marcos"},
			},
			CaregiverAnswers: []types.CaregiverAnswer{
				{ItemID: types.GT_FIELD_HAS_PEOPLE, YN: true},
			},
		}

		items := BuildQuizItems(photo, 5, NewSeededSampler(7))
		if len(items) != 2 {
			t.Fatalf("unexpected item count: %d", len(items))
		}

		ynItem := items[0]
		if ynItem.Type != types.QUIZ_ITEM_TYPE_YES_NO {
			t.Errorf("first item should be yes/no, got %s", ynItem.Type)
		}
		if ynItem.Field != types.GT_FIELD_HAS_PEOPLE {
			t.Errorf("unexpected field: %s", ynItem.Field)
		}

		mcItem := items[1]
		if mcItem.Type != types.QUIZ_ITEM_TYPE_MULTIPLE_CHOICE {
			t.Errorf("second item should be multiple-choice, got %s", mcItem.Type)
		}
		if len(mcItem.Options) < 2 || len(mcItem.Options) > 4 {
			t.Errorf("unexpected option count: %d", len(mcItem.Options))
		}
		if mcItem.CorrectIndex < 0 || mcItem.CorrectIndex >= len(mcItem.Options) {
			t.Errorf("correct index out of range: %d", mcItem.CorrectIndex)
		}
		if mcItem.Options[mcItem.CorrectIndex] != "Ana" {
			t.Errorf("correct option should be the pool's first value, got %q", mcItem.Options[mcItem.CorrectIndex])
		}
	})

	t.Run("yes/no items come before multiple-choice", func(t *testing.T) {
		photo := types.Photo{
			Data: map[string]interface{}{
				"people": []interface{}{"Ana", "Luis"},
				"places": []interface{}{"Cartagena", "Bogotá"},
			},
			CaregiverAnswers: []types.CaregiverAnswer{
				{ItemID: types.GT_FIELD_HAS_EVENTS, YN: false},
				{ItemID: types.GT_FIELD_HAS_DETAILS, YN: true},
			},
		}

		items := BuildQuizItems(photo, 10, NewSeededSampler(7))
		sawMultipleChoice := false
		for _, item := range items {
			if item.Type == types.QUIZ_ITEM_TYPE_MULTIPLE_CHOICE {
				sawMultipleChoice = true
			} else if sawMultipleChoice {
				t.Error("yes/no item after multiple-choice item")
			}
		}
	})

	t.Run("item list truncated to cap", func(t *testing.T) {
		photo := types.Photo{
			Data: map[string]interface{}{
				"people":   []interface{}{"Ana", "Luis"},
				"places":   []interface{}{"Cartagena", "Bogotá"},
				"events":   []interface{}{"Boda", "Cumpleaños"},
				"emotions": []interface{}{"Alegría", "Nostalgia"},
			},
			CaregiverAnswers: []types.CaregiverAnswer{
				{ItemID: types.GT_FIELD_HAS_EVENTS, YN: true},
				{ItemID: types.GT_FIELD_HAS_PEOPLE, YN: true},
				{ItemID: types.GT_FIELD_HAS_PLACES, YN: true},
			},
		}

		items := BuildQuizItems(photo, 4, NewSeededSampler(7))
		if len(items) != 4 {
			t.Errorf("unexpected item count: %d", len(items))
		}
	})

	t.Run("pool with a single distinct value is skipped", func(t *testing.T) {
		photo := types.Photo{
			Data: map[string]interface{}{
				"people": []interface{}{"Ana", "Ana", "Ana"},
			},
		}

		items := BuildQuizItems(photo, 5, NewSeededSampler(7))
		if len(items) != 0 {
			t.Errorf("expected no items, got %d", len(items))
		}
	})

	t.Run("scalar valued pool", func(t *testing.T) {
		photo := types.Photo{
			Data: map[string]interface{}{
				"places": "Cartagena",
			},
		}

		// single value means no distractors, so no item either
		items := BuildQuizItems(photo, 5, NewSeededSampler(7))
		if len(items) != 0 {
			t.Errorf("expected no items, got %d", len(items))
		}
	})

	t.Run("no ground truth yields no items", func(t *testing.T) {
		items := BuildQuizItems(types.Photo{}, 5, NewSeededSampler(7))
		if len(items) != 0 {
			t.Errorf("expected no items, got %d", len(items))
		}
	})
}

func TestNormalizeDataPools(t *testing.T) {
	pools := NormalizeDataPools(map[string]interface{}{
		"people":   []interface{}{"Ana", "Luis"},
		"places":   "Cartagena",
		"events":   []interface{}{},
		"emotions": []interface{}{"", "Alegría"},
		"other":    42,
	})

	if len(pools["people"]) != 2 {
		t.Errorf("unexpected people pool: %v", pools["people"])
	}
	if len(pools["places"]) != 1 || pools["places"][0] != "Cartagena" {
		t.Errorf("unexpected places pool: %v", pools["places"])
	}
	if _, ok := pools["events"]; ok {
		t.Error("empty pool should be dropped")
	}
	if len(pools["emotions"]) != 1 {
		t.Errorf("empty values should be dropped: %v", pools["emotions"])
	}
	if _, ok := pools["other"]; ok {
		t.Error("non string pool should be dropped")
	}
}
