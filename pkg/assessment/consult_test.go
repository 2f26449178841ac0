package assessment

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/recuerda-health/recall-backend/pkg/assessment/types"
)

func TestSessionScorePct(t *testing.T) {
	t.Run("all correct", func(t *testing.T) {
		if pct := SessionScorePct(6, 6); pct != 100 {
			t.Errorf("unexpected pct: %d", pct)
		}
	})

	t.Run("partial", func(t *testing.T) {
		if pct := SessionScorePct(2, 3); pct != 67 {
			t.Errorf("unexpected pct: %d", pct)
		}
	})

	t.Run("none correct", func(t *testing.T) {
		if pct := SessionScorePct(0, 5); pct != 0 {
			t.Errorf("unexpected pct: %d", pct)
		}
	})

	t.Run("empty session scores zero", func(t *testing.T) {
		if pct := SessionScorePct(0, 0); pct != 0 {
			t.Errorf("unexpected pct: %d", pct)
		}
	})

	t.Run("rounds like the quiz score path", func(t *testing.T) {
		cases := []struct {
			correct  int
			total    int
			expected int
		}{
			{1, 3, 33},
			{2, 3, 67},
			{5, 6, 83},
			{1, 8, 13},
		}
		for _, c := range cases {
			if pct := SessionScorePct(c.correct, c.total); pct != c.expected {
				t.Errorf("%d/%d: expected %d, got %d", c.correct, c.total, c.expected, pct)
			}
		}
	})
}

func TestAnswerInsertError(t *testing.T) {
	t.Run("duplicate key maps to already answered", func(t *testing.T) {
		dupErr := mongo.WriteException{
			WriteErrors: mongo.WriteErrors{
				{Code: 11000, Message: "E11000 duplicate key error"},
			},
		}
		if err := answerInsertError(dupErr); !errors.Is(err, ErrAlreadyAnswered) {
			t.Errorf("expected ErrAlreadyAnswered, got %v", err)
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		plain := errors.New("connection reset")
		if err := answerInsertError(plain); !errors.Is(err, plain) {
			t.Errorf("expected passthrough, got %v", err)
		}
	})
}

func TestComputeTrendDelta(t *testing.T) {
	t.Run("no history", func(t *testing.T) {
		if delta := ComputeTrendDelta(90, nil); delta != 0 {
			t.Errorf("unexpected delta: %d", delta)
		}
	})

	t.Run("improvement against most recent", func(t *testing.T) {
		// finished sessions sorted most recent first
		previous := []types.ConsultSession{
			{ScorePct: 85},
			{ScorePct: 70},
		}
		if delta := ComputeTrendDelta(90, previous); delta != 5 {
			t.Errorf("unexpected delta: %d", delta)
		}
	})

	t.Run("decline", func(t *testing.T) {
		previous := []types.ConsultSession{{ScorePct: 80}}
		if delta := ComputeTrendDelta(60, previous); delta != -20 {
			t.Errorf("unexpected delta: %d", delta)
		}
	})

	t.Run("unchanged", func(t *testing.T) {
		previous := []types.ConsultSession{{ScorePct: 75}}
		if delta := ComputeTrendDelta(75, previous); delta != 0 {
			t.Errorf("unexpected delta: %d", delta)
		}
	})
}
