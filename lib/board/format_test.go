package board

import (
	"testing"
	"time"
)

func TestFormatDateRoundTrippableInput(t *testing.T) {
	stamp := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC).Format(time.RFC3339)

	got := FormatDate(stamp)
	if got == stamp {
		t.Errorf("expected a formatted display string, got the raw input %q", got)
	}
	if got == "" {
		t.Errorf("expected non-empty display string")
	}
}

func TestFormatDateFallsBackOnGarbage(t *testing.T) {
	for _, input := range []string{"", "yesterday", "2024-13-45T99:99:99Z"} {
		if got := FormatDate(input); got != input {
			t.Errorf("expected fallback to raw input %q, got %q", input, got)
		}
	}
}
