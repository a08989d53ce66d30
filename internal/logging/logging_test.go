package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/kataras/golog"
)

func TestSetupLevels(t *testing.T) {
	defer Setup("info", os.Stderr)

	var buf bytes.Buffer
	if err := Setup("warn", &buf); err != nil {
		t.Fatalf("Setup: %v", err)
	}

	log := golog.Child("[test]")
	log.Infof("hidden %d", 1)
	log.Warnf("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown 2") || !strings.Contains(out, "[test]") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestChildFollowsSetup(t *testing.T) {
	defer Setup("info", os.Stderr)

	log := Child("[component]")
	if Child("[component]") != log {
		t.Fatal("Child should return the same logger for a prefix")
	}

	var buf bytes.Buffer
	if err := Setup("error", &buf); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	log.Warnf("dropped")
	log.Errorf("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("component logger ignored the new level: %q", out)
	}
	if !strings.Contains(out, "kept") || !strings.Contains(out, "[component]") {
		t.Errorf("error line missing: %q", out)
	}
}

func TestSetupUnknownLevel(t *testing.T) {
	if err := Setup("chatty", &bytes.Buffer{}); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}

	f, err := os.CreateTemp(t.TempDir(), "log")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("a regular file is not a terminal")
	}
}
