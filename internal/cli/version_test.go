package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestResolveVersionInfo_LdflagsOverride(t *testing.T) {
	original := version
	defer func() { version = original }()

	version = "1.2.3"
	v, _, _ := resolveVersionInfo()
	if v != "1.2.3" {
		t.Errorf("expected ldflags version '1.2.3', got %q", v)
	}
}

func TestResolveVersionInfo_DevFallback(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer func() { version, commit, date = origV, origC, origD }()

	version, commit, date = "dev", "unknown", "unknown"
	v, c, d := resolveVersionInfo()

	if v == "" {
		t.Error("version should not be empty")
	}
	// In a test binary, ReadBuildInfo returns test module info.
	// We just verify it doesn't panic and returns something.
	t.Logf("resolved: version=%s commit=%s date=%s", v, c, d)
}

func TestVersionCmd(t *testing.T) {
	origV := version
	defer func() { version = origV }()
	version = "9.9.9"

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "bracecheck 9.9.9 ") {
		t.Errorf("unexpected version output: %q", out.String())
	}
}
