package corpusdex

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenize_MixedScript(t *testing.T) {
	got := Tokenize("Hello, world! Как дела?")
	want := []string{"hello", "world", "как", "дела"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenize_DigitsAreSeparators(t *testing.T) {
	got := Tokenize("room101 door2")
	want := []string{"room", "door"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenize_Empty(t *testing.T) {
	got := Tokenize("")
	if len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %v, want empty", got)
	}
}

func TestTokenize_UppercaseCyrillic(t *testing.T) {
	got := Tokenize("МОСКВА Ёлка")
	want := []string{"москва", "ёлка"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenize_Idempotence(t *testing.T) {
	tokens := []string{"already", "lower", "ascii", "tokens"}
	joined := strings.Join(tokens, " ")
	got := Tokenize(joined)
	if !reflect.DeepEqual(got, tokens) {
		t.Errorf("Tokenize(join(tokens)) = %v, want %v", got, tokens)
	}
}

func TestTokenize_RepetitionsPreserved(t *testing.T) {
	got := Tokenize("go go go")
	want := []string{"go", "go", "go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}
