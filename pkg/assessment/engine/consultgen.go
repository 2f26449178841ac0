package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/recuerda-health/recall-backend/pkg/assessment/types"
)

const (
	DEFAULT_CONSULT_QUESTION_COUNT = 6
	RECENT_PHOTOS_LIMIT            = 50
)

var DefaultConsultQuestionTypes = []string{
	types.CONSULT_QUESTION_TYPE_WHO,
	types.CONSULT_QUESTION_TYPE_WHERE,
	types.CONSULT_QUESTION_TYPE_FREE,
}

var consultPrompts = map[string]string{
	types.CONSULT_QUESTION_TYPE_WHO:   "Who appears in this photo?",
	types.CONSULT_QUESTION_TYPE_WHERE: "Where was this photo taken?",
	types.CONSULT_QUESTION_TYPE_FREE:  "Tell me what you remember about this photo.",
}

// BuildConsultQuestions samples min(n, len(photos)) photos without
// replacement and derives one question per sampled photo, cycling
// through the allowed question types in sampled order. Expected answers
// are normalized and private to the scoring path.
func BuildConsultQuestions(photos []types.Photo, n int, questionTypes []string, sampler *Sampler) []types.ConsultQuestion {
	if n < 1 {
		n = DEFAULT_CONSULT_QUESTION_COUNT
	}
	if len(questionTypes) == 0 {
		questionTypes = DefaultConsultQuestionTypes
	}

	now := time.Now()
	questions := []types.ConsultQuestion{}
	for order, photoIndex := range sampler.PickIndices(len(photos), n) {
		photo := photos[photoIndex]
		qType := questionTypes[order%len(questionTypes)]

		questions = append(questions, types.ConsultQuestion{
			ID:        uuid.NewString(),
			PhotoID:   photo.ID.Hex(),
			Type:      qType,
			Prompt:    consultPrompts[qType],
			Order:     order,
			Expected:  ExpectedAnswersFor(photo, qType),
			CreatedAt: now,
		})
	}
	return questions
}

// ExpectedAnswersFor derives the normalized expected answer set for one
// question type from a photo's tags and description.
func ExpectedAnswersFor(photo types.Photo, questionType string) []string {
	var raw []string
	switch questionType {
	case types.CONSULT_QUESTION_TYPE_WHO:
		raw = tagValues(photo.Tags, types.TAG_CATEGORY_PERSON)
	case types.CONSULT_QUESTION_TYPE_WHERE:
		raw = tagValues(photo.Tags, types.TAG_CATEGORY_PLACE)
	case types.CONSULT_QUESTION_TYPE_FREE:
		raw = tagValues(photo.Tags, "")
		raw = append(raw, NormalizeTokens(photo.Description)...)
	}

	expected := []string{}
	seen := map[string]bool{}
	for _, value := range raw {
		normalized := NormalizeText(value)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		expected = append(expected, normalized)
	}
	return expected
}

// EvaluateConsultAnswer checks a submitted answer against the expected
// set: exact match on the normalized text when expected values exist,
// otherwise a length heuristic (at least 3 normalized characters).
func EvaluateConsultAnswer(expected []string, answerText string) bool {
	normalized := NormalizeText(answerText)
	if len(expected) == 0 {
		return len(normalized) >= 3
	}
	for _, value := range expected {
		if normalized == value {
			return true
		}
	}
	return false
}

func tagValues(tags []types.Tag, category string) []string {
	values := []string{}
	for _, tag := range tags {
		if category == "" || tag.Category == category {
			values = append(values, tag.Value)
		}
	}
	return values
}
