package hostapi

import (
	"strings"
	"testing"
)

func TestFormatBounded_UnderLimitUntouched(t *testing.T) {
	msg := formatBounded("hello %s", "world")
	if msg != "hello world" {
		t.Errorf("got %q", msg)
	}
}

func TestFormatBounded_ExactLimitUntouched(t *testing.T) {
	in := strings.Repeat("a", MaxMessageLen)
	if got := formatBounded("%s", in); got != in {
		t.Errorf("message at the limit was modified")
	}
}

func TestFormatBounded_OverLimitCutWithMarker(t *testing.T) {
	got := formatBounded("%s", strings.Repeat("a", MaxMessageLen+1))
	if len(got) != MaxMessageLen {
		t.Errorf("len = %d, want %d", len(got), MaxMessageLen)
	}
	if !strings.HasSuffix(got, truncationMark) {
		t.Errorf("missing truncation marker")
	}
}
