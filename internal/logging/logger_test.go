package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetLevelFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	Get().SetOutput(&buf)
	defer Get().SetOutput(os.Stderr)

	SetLevel(logrus.WarnLevel)
	Debug("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("expected debug line to be filtered, got %q", buf.String())
	}

	Warning("should appear")
	if buf.Len() == 0 {
		t.Fatalf("expected warning line to be emitted")
	}
}

func TestCriticalDoesNotPanicOrExit(t *testing.T) {
	var buf bytes.Buffer
	Get().SetOutput(&buf)
	defer Get().SetOutput(os.Stderr)
	SetLevel(logrus.DebugLevel)

	Critical("unrecoverable condition for this connection")
	if buf.Len() == 0 {
		t.Fatalf("expected critical line to be emitted")
	}
}
