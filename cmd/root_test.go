package cmd

import "testing"

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "b", "c"); got != "b" {
		t.Errorf("firstNonEmpty = %q, want b", got)
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Errorf("firstNonEmpty = %q, want empty", got)
	}
}

func TestSetupLogging(t *testing.T) {
	if err := setupLogging("debug", "json"); err != nil {
		t.Errorf("setupLogging(debug, json) = %v", err)
	}
	if err := setupLogging("loud", "console"); err == nil {
		t.Error("expected error for unknown level")
	}
	if err := setupLogging("info", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
