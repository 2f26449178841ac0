package engine

import (
	"github.com/google/uuid"

	"github.com/recuerda-health/recall-backend/pkg/assessment/types"
)

const DEFAULT_MAX_QUIZ_ITEMS = 5

const DEFAULT_QUIZ_ITEM_WEIGHT = 1

// yes/no prompts for the fixed ground truth fields, in generation order
var ynFields = []struct {
	Field  string
	Prompt string
}{
	{types.GT_FIELD_HAS_EVENTS, "Do you remember any special event in this photo?"},
	{types.GT_FIELD_HAS_PEOPLE, "Do you recognize the people in this photo?"},
	{types.GT_FIELD_HAS_PLACES, "Do you remember where this photo was taken?"},
	{types.GT_FIELD_HAS_EMOTIONS, "Do you remember how you felt in this moment?"},
	{types.GT_FIELD_HAS_DETAILS, "Do you remember details about this photo?"},
}

// categorical pools in generation order with their prompts
var mcCategories = []struct {
	Category string
	Prompt   string
}{
	{"people", "Who appears in this photo?"},
	{"places", "Where was this photo taken?"},
	{"events", "What was happening in this photo?"},
	{"emotions", "How did you feel in this moment?"},
}

const FALLBACK_ITEM_PROMPT = "Do you remember the moments your caregiver described for you?"

// BuildQuizItems turns a photo's caregiver supplied ground truth into an
// ordered, scoring-ready item list: one yes/no item per fixed field
// present in caregiverAnswers, then one multiple-choice item per
// populated categorical pool, truncated to maxItems.
func BuildQuizItems(photo types.Photo, maxItems int, sampler *Sampler) []types.QuizItem {
	if maxItems < 1 {
		maxItems = DEFAULT_MAX_QUIZ_ITEMS
	}

	items := []types.QuizItem{}

	answered := map[string]bool{}
	for _, ca := range photo.CaregiverAnswers {
		answered[ca.ItemID] = true
	}
	for _, def := range ynFields {
		if !answered[def.Field] {
			continue
		}
		items = append(items, types.QuizItem{
			ID:     uuid.NewString(),
			Type:   types.QUIZ_ITEM_TYPE_YES_NO,
			Prompt: def.Prompt,
			Field:  def.Field,
			Weight: DEFAULT_QUIZ_ITEM_WEIGHT,
		})
	}

	pools := NormalizeDataPools(photo.Data)
	for _, def := range mcCategories {
		pool := pools[def.Category]
		if len(pool) == 0 {
			continue
		}
		item, ok := buildMultipleChoiceItem(def.Prompt, pool, sampler)
		if !ok {
			continue
		}
		items = append(items, item)
	}

	if len(items) > maxItems {
		items = items[:maxItems]
	}
	return items
}

// BuildFallbackItem is the generic recall item used when a photo has no
// categorized ground truth to quiz against.
func BuildFallbackItem() types.QuizItem {
	return types.QuizItem{
		ID:     uuid.NewString(),
		Type:   types.QUIZ_ITEM_TYPE_YES_NO,
		Prompt: FALLBACK_ITEM_PROMPT,
		Weight: DEFAULT_QUIZ_ITEM_WEIGHT,
	}
}

// buildMultipleChoiceItem uses the pool's first value as the correct
// answer and samples distractors from the rest. Pools that collapse to
// fewer than two distinct options produce no item.
func buildMultipleChoiceItem(prompt string, pool []string, sampler *Sampler) (item types.QuizItem, ok bool) {
	correct := pool[0]

	options := sampler.SampleOptions(correct, pool[1:])
	if len(options) < 2 {
		return item, false
	}

	// second, independent shuffle determines the displayed order
	sampler.ShuffleStrings(options)

	correctIndex := 0
	for i, value := range options {
		if value == correct {
			correctIndex = i
			break
		}
	}

	return types.QuizItem{
		ID:           uuid.NewString(),
		Type:         types.QUIZ_ITEM_TYPE_MULTIPLE_CHOICE,
		Prompt:       prompt,
		Options:      options,
		CorrectIndex: correctIndex,
		Weight:       DEFAULT_QUIZ_ITEM_WEIGHT,
	}, true
}

// NormalizeDataPools flattens the dynamic shape of a photo's categorical
// data (missing, scalar or list valued) into a uniform list of strings
// per category, so generation logic only ever sees one shape.
func NormalizeDataPools(data map[string]interface{}) map[string][]string {
	pools := map[string][]string{}
	for category, raw := range data {
		var values []string
		switch v := raw.(type) {
		case string:
			values = []string{v}
		case []string:
			values = v
		case []interface{}:
			for _, entry := range v {
				if s, isString := entry.(string); isString {
					values = append(values, s)
				}
			}
		}

		cleaned := make([]string, 0, len(values))
		for _, value := range values {
			if value != "" {
				cleaned = append(cleaned, value)
			}
		}
		if len(cleaned) > 0 {
			pools[category] = cleaned
		}
	}
	return pools
}
