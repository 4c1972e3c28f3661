package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestSetVerbose(t *testing.T) {
	// Reset state after test
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("test message %s", "arg")

	output := buf.String()
	if !strings.Contains(output, "DEBUG") {
		t.Errorf("expected level in output: %q", output)
	}
	if !strings.Contains(output, "test message arg") {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("test message")
	Info("info message")
	Section("section")

	if buf.Len() > 0 {
		t.Errorf("expected no output when verbose is disabled, got %q", buf.String())
	}
}

func TestWarn_WhenNotVerbose(t *testing.T) {
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Warn("dropped %d segment(s)", 2)

	output := buf.String()
	if !strings.Contains(output, "WARN") || !strings.Contains(output, "dropped 2 segment(s)") {
		t.Errorf("expected warning without verbose mode, got %q", output)
	}
}

func TestSetVerbose_SwitchesLevel(t *testing.T) {
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	SetOutput(&buf)

	SetVerbose(true)
	Debug("shown")
	SetVerbose(false)
	Debug("hidden")

	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected debug line in verbose mode, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("expected debug line suppressed after verbose is disabled, got %q", buf.String())
	}
}

func TestSection(t *testing.T) {
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Extraction")

	if !strings.Contains(buf.String(), "=== Extraction ===") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestInfoAndWarn_WhenVerbose(t *testing.T) {
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Info("found %d message(s)", 2)
	Warn("dropped %d segment(s)", 1)

	output := buf.String()
	if !strings.Contains(output, "INFO") || !strings.Contains(output, "found 2 message(s)") {
		t.Errorf("missing info line: %q", output)
	}
	if !strings.Contains(output, "WARN") || !strings.Contains(output, "dropped 1 segment(s)") {
		t.Errorf("missing warn line: %q", output)
	}
}

func TestOutput_HasNoTimestamp(t *testing.T) {
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("first")
	first := buf.String()
	buf.Reset()
	Debug("first")

	if first != buf.String() {
		t.Errorf("expected identical lines, got %q and %q", first, buf.String())
	}
	Sync()
}
