package version

import (
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	if got := Read(); !strings.HasPrefix(got, "pwtable ") {
		t.Errorf("Read() = %q, want prefix %q", got, "pwtable ")
	}
}
