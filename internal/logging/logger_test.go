package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
)

func capture(t *testing.T, level Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(level)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(LevelInfo)
	})
	return &buf
}

func TestInfo_WritesJSONLine(t *testing.T) {
	buf := capture(t, LevelInfo)
	Info("session created", Fields{"session_id": "abc"})

	var line map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if line["level"] != "info" || line["msg"] != "session created" || line["session_id"] != "abc" {
		t.Fatalf("unexpected line %v", line)
	}
	if _, ok := line["ts"]; !ok {
		t.Fatalf("expected timestamp in %v", line)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t, LevelWarn)
	Debug("hidden", nil)
	Info("hidden", nil)
	Warn("shown", nil)
	Error("also shown", errors.New("boom"), nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], `"error":"boom"`) {
		t.Fatalf("expected error text in %q", lines[1])
	}
}

func TestError_DoesNotMutateFields(t *testing.T) {
	capture(t, LevelDebug)
	f := Fields{"k": "v"}
	Error("x", errors.New("boom"), f)
	if len(f) != 1 {
		t.Fatalf("caller fields must not be modified, got %v", f)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"debug": LevelDebug, "INFO": LevelInfo, "warning": LevelWarn, "error": LevelError, "": LevelInfo}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
