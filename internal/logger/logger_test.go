package logger

import (
	"bytes"
	"os"
	"testing"
)

func resetLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})

	var buf bytes.Buffer
	SetOutput(&buf)
	return &buf
}

func TestSetVerbose(t *testing.T) {
	resetLogger(t)

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose off by default")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose on after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose off after SetVerbose(false)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	buf := resetLogger(t)
	SetVerbose(true)

	Debug("resolved locator %s", "axios/axios")

	if got := buf.String(); got != "[DEBUG] resolved locator axios/axios\n" {
		t.Errorf("unexpected debug output: %q", got)
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	buf := resetLogger(t)
	SetVerbose(false)

	Debug("resolved locator axios/axios")

	if buf.Len() > 0 {
		t.Error("expected no output while verbose is off")
	}
}

func TestSection(t *testing.T) {
	buf := resetLogger(t)
	SetVerbose(true)

	Section("Verify")

	if got := buf.String(); got != "\n=== Verify ===\n" {
		t.Errorf("unexpected section output: %q", got)
	}
}

func TestInfo(t *testing.T) {
	buf := resetLogger(t)
	SetVerbose(true)

	Info("packaged %d files", 7)

	if got := buf.String(); got != "[INFO] packaged 7 files\n" {
		t.Errorf("unexpected info output: %q", got)
	}
}

func TestWarn(t *testing.T) {
	buf := resetLogger(t)
	SetVerbose(true)

	Warn("enhanced fetch unavailable")

	if got := buf.String(); got != "[WARN] enhanced fetch unavailable\n" {
		t.Errorf("unexpected warn output: %q", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	resetLogger(t)

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		i := i
		go func() {
			SetVerbose(true)
			Debug("worker %d finished", i)
			IsVerbose()
			SetVerbose(false)
			done <- struct{}{}
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
