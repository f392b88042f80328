package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveDataPath(t *testing.T) {
	t.Run("Passthrough Without ForceTemp", func(t *testing.T) {
		if got := ResolveDataPath("/home/user/.daygo", false); got != "/home/user/.daygo" {
			t.Errorf("ResolveDataPath() = %s", got)
		}
	})

	t.Run("Empty Path Defaults To Dot", func(t *testing.T) {
		if got := ResolveDataPath("", false); got != "." {
			t.Errorf("ResolveDataPath() = %s", got)
		}
	})

	t.Run("ForceTemp Reroots Into Temp", func(t *testing.T) {
		got := ResolveDataPath("/home/user/journal", true)
		if !strings.HasPrefix(got, os.TempDir()) {
			t.Errorf("Expected temp-rooted path, got %s", got)
		}
		if filepath.Base(got) != "journal" {
			t.Errorf("Expected base 'journal', got %s", got)
		}
	})

	t.Run("ForceTemp Trusts Paths Already In Temp", func(t *testing.T) {
		inTemp := t.TempDir()
		if got := ResolveDataPath(inTemp, true); got != inTemp {
			t.Errorf("Expected %s, got %s", inTemp, got)
		}
	})
}
