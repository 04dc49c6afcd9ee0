package util

import "testing"

func TestParseFloatDefault(t *testing.T) {
	if got := ParseFloatDefault("102.5", 0); got != 102.5 {
		t.Fatalf("unexpected value %v", got)
	}
	if got := ParseFloatDefault("", 1); got != 1 {
		t.Fatalf("expected default for empty, got %v", got)
	}
	if got := ParseFloatDefault("n/a", 0); got != 0 {
		t.Fatalf("expected default for garbage, got %v", got)
	}
}

func TestParseInt64Default(t *testing.T) {
	if got := ParseInt64Default("46503246", 0); got != 46503246 {
		t.Fatalf("unexpected value %v", got)
	}
	if got := ParseInt64Default("12.5", 7); got != 7 {
		t.Fatalf("expected default for float input, got %v", got)
	}
}

func TestParseIntDefault(t *testing.T) {
	if got := ParseIntDefault("", 50); got != 50 {
		t.Fatalf("expected default")
	}
	if got := ParseIntDefault("10", 50); got != 10 {
		t.Fatalf("unexpected value %v", got)
	}
}
