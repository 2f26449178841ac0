package engine

import (
	"reflect"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	t.Run("case and diacritics", func(t *testing.T) {
		if NormalizeText("MARÍA  ") != NormalizeText("maria") {
			t.Errorf("unexpected normalization: %q vs %q", NormalizeText("MARÍA  "), NormalizeText("maria"))
		}
	})

	t.Run("punctuation folded to spaces", func(t *testing.T) {
		got := NormalizeText("¡Hola, mundo! ¿Qué tal?")
		if got != "hola mundo que tal" {
			t.Errorf("unexpected result: %q", got)
		}
	})

	t.Run("whitespace collapsed", func(t *testing.T) {
		got := NormalizeText("  la   playa \t de  Cartagena ")
		if got != "la playa de cartagena" {
			t.Errorf("unexpected result: %q", got)
		}
	})

	t.Run("digits kept", func(t *testing.T) {
		got := NormalizeText("Navidad 1998")
		if got != "navidad 1998" {
			t.Errorf("unexpected result: %q", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if NormalizeText(" .,;! ") != "" {
			t.Error("should collapse to empty string")
		}
	})
}

func TestNormalizeTokens(t *testing.T) {
	t.Run("splits into normalized tokens", func(t *testing.T) {
		got := NormalizeTokens("El cumpleaños de Andrés.")
		want := []string{"el", "cumpleanos", "de", "andres"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("unexpected tokens: %v", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if tokens := NormalizeTokens("   "); tokens != nil {
			t.Errorf("expected nil, got %v", tokens)
		}
	})
}
