package engine

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/recuerda-health/recall-backend/pkg/assessment/types"
)

func testPhotos(n int) []types.Photo {
	photos := make([]types.Photo, n)
	for i := range photos {
		photos[i] = types.Photo{
			ID: primitive.NewObjectID(),
			Tags: []types.Tag{
				{Category: types.TAG_CATEGORY_PERSON, Value: "María"},
				{Category: types.TAG_CATEGORY_PLACE, Value: "Cartagena"},
			},
			Description: "Un paseo por la playa.",
		}
	}
	return photos
}

func TestBuildConsultQuestions(t *testing.T) {
	t.Run("samples min(n, available) photos", func(t *testing.T) {
		questions := BuildConsultQuestions(testPhotos(10), 6, nil, NewSeededSampler(3))
		if len(questions) != 6 {
			t.Errorf("unexpected question count: %d", len(questions))
		}

		questions = BuildConsultQuestions(testPhotos(2), 6, nil, NewSeededSampler(3))
		if len(questions) != 2 {
			t.Errorf("unexpected question count: %d", len(questions))
		}
	})

	t.Run("question types cycle round-robin", func(t *testing.T) {
		questions := BuildConsultQuestions(testPhotos(5), 5, []string{"who", "where"}, NewSeededSampler(3))
		want := []string{"who", "where", "who", "where", "who"}
		for i, q := range questions {
			if q.Type != want[i] {
				t.Errorf("question %d: got type %q, want %q", i, q.Type, want[i])
			}
			if q.Order != i {
				t.Errorf("question %d: unexpected order %d", i, q.Order)
			}
			if q.Prompt == "" {
				t.Errorf("question %d: missing prompt", i)
			}
		}
	})

	t.Run("sampled photos are distinct", func(t *testing.T) {
		questions := BuildConsultQuestions(testPhotos(8), 8, nil, NewSeededSampler(3))
		seen := map[string]bool{}
		for _, q := range questions {
			if seen[q.PhotoID] {
				t.Errorf("photo sampled twice: %s", q.PhotoID)
			}
			seen[q.PhotoID] = true
		}
	})
}

func TestExpectedAnswersFor(t *testing.T) {
	photo := types.Photo{
		Tags: []types.Tag{
			{Category: types.TAG_CATEGORY_PERSON, Value: "María"},
			{Category: types.TAG_CATEGORY_PERSON, Value: "Andrés"},
			{Category: types.TAG_CATEGORY_PLACE, Value: "Cartagena"},
		},
		Description: "La boda de María.",
	}

	t.Run("who uses persona tags", func(t *testing.T) {
		expected := ExpectedAnswersFor(photo, types.CONSULT_QUESTION_TYPE_WHO)
		if len(expected) != 2 || expected[0] != "maria" || expected[1] != "andres" {
			t.Errorf("unexpected expected set: %v", expected)
		}
	})

	t.Run("where uses lugar tags", func(t *testing.T) {
		expected := ExpectedAnswersFor(photo, types.CONSULT_QUESTION_TYPE_WHERE)
		if len(expected) != 1 || expected[0] != "cartagena" {
			t.Errorf("unexpected expected set: %v", expected)
		}
	})

	t.Run("free unions tag values and description tokens", func(t *testing.T) {
		expected := ExpectedAnswersFor(photo, types.CONSULT_QUESTION_TYPE_FREE)
		want := map[string]bool{"maria": true, "andres": true, "cartagena": true, "la": true, "boda": true, "de": true}
		if len(expected) != len(want) {
			t.Errorf("unexpected expected set: %v", expected)
		}
		for _, value := range expected {
			if !want[value] {
				t.Errorf("unexpected value: %q", value)
			}
		}
	})

	t.Run("no matching tags yields empty set", func(t *testing.T) {
		expected := ExpectedAnswersFor(types.Photo{}, types.CONSULT_QUESTION_TYPE_WHO)
		if len(expected) != 0 {
			t.Errorf("unexpected expected set: %v", expected)
		}
	})
}

func TestEvaluateConsultAnswer(t *testing.T) {
	t.Run("exact match after normalization", func(t *testing.T) {
		if !EvaluateConsultAnswer([]string{"maria"}, "  MARÍA ") {
			t.Error("should match")
		}
	})

	t.Run("no match", func(t *testing.T) {
		if EvaluateConsultAnswer([]string{"maria"}, "Luisa") {
			t.Error("should not match")
		}
	})

	t.Run("length heuristic without expected values", func(t *testing.T) {
		if !EvaluateConsultAnswer(nil, "una tarde en la playa") {
			t.Error("long answer should count as correct")
		}
		if EvaluateConsultAnswer(nil, "no") {
			t.Error("short answer should not count")
		}
	})
}
