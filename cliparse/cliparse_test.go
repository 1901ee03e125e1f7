// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/quickly-tally/election"
)

// unsetEnv clears key for the test and restores it afterwards
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	unsetEnv(t, "PORT", "TALLY_POLICY", "TALLY_MAX_BALLOTS", "TALLY_MAX_BODY_BYTES")

	cfg, err := ParseFlags([]string{"-env-file", ""})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("Expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.Policy != election.PolicySingle {
		t.Errorf("Expected policy single, got %s", cfg.Policy)
	}
	if cfg.MaxBallots != DefaultMaxBallots {
		t.Errorf("Expected max ballots %d, got %d", DefaultMaxBallots, cfg.MaxBallots)
	}
	if cfg.MaxBodyBytes != DefaultMaxBodyBytes {
		t.Errorf("Expected max body bytes %d, got %d", DefaultMaxBodyBytes, cfg.MaxBodyBytes)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TALLY_POLICY", "batch")
	t.Setenv("TALLY_MAX_BALLOTS", "50")
	t.Setenv("TALLY_MAX_BODY_BYTES", "1024")

	cfg, err := ParseFlags([]string{"-env-file", ""})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Port != 9000 {
		t.Errorf("Expected port 9000, got %d", cfg.Port)
	}
	if cfg.Policy != election.PolicyBatch {
		t.Errorf("Expected policy batch, got %s", cfg.Policy)
	}
	if cfg.MaxBallots != 50 {
		t.Errorf("Expected max ballots 50, got %d", cfg.MaxBallots)
	}
	if cfg.MaxBodyBytes != 1024 {
		t.Errorf("Expected max body bytes 1024, got %d", cfg.MaxBodyBytes)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TALLY_POLICY", "batch")

	cfg, err := ParseFlags([]string{"-p", "8080", "-policy", "single", "-max-ballots", "10", "-env-file", ""})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("Expected port 8080, got %d", cfg.Port)
	}
	if cfg.Policy != election.PolicySingle {
		t.Errorf("Expected policy single, got %s", cfg.Policy)
	}
	if cfg.MaxBallots != 10 {
		t.Errorf("Expected max ballots 10, got %d", cfg.MaxBallots)
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	unsetEnv(t, "PORT", "TALLY_POLICY", "TALLY_MAX_BALLOTS", "TALLY_MAX_BODY_BYTES")
	t.Setenv("TALLY_MAX_BALLOTS", "7")

	path := filepath.Join(t.TempDir(), "tally.env")
	if err := os.WriteFile(path, []byte("PORT=4000\nTALLY_POLICY=batch\nTALLY_MAX_BALLOTS=99\n"), 0o600); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	cfg, err := ParseFlags([]string{"-env-file", path})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Port != 4000 {
		t.Errorf("Expected port 4000, got %d", cfg.Port)
	}
	if cfg.Policy != election.PolicyBatch {
		t.Errorf("Expected policy batch, got %s", cfg.Policy)
	}
	// already-set variables are not overwritten by the file
	if cfg.MaxBallots != 7 {
		t.Errorf("Expected max ballots 7, got %d", cfg.MaxBallots)
	}
}

func TestParseFlags_MissingDefaultEnvFileIsIgnored(t *testing.T) {
	unsetEnv(t, "PORT", "TALLY_POLICY", "TALLY_MAX_BALLOTS", "TALLY_MAX_BODY_BYTES")
	t.Chdir(t.TempDir())

	if _, err := ParseFlags(nil); err != nil {
		t.Errorf("Expected missing default .env to be ignored, got %v", err)
	}

	if _, err := ParseFlags([]string{"-env-file", "missing.env"}); err == nil {
		t.Error("Expected error for missing explicit env file")
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "bad port env", env: map[string]string{"PORT": "abc"}},
		{name: "port out of range", args: []string{"-p", "70000"}},
		{name: "unknown policy", args: []string{"-policy", "coinflip"}},
		{name: "negative max ballots", args: []string{"-max-ballots", "-1"}},
		{name: "bad body limit", env: map[string]string{"TALLY_MAX_BODY_BYTES": "lots"}},
		{name: "unknown flag", args: []string{"-database-url", "postgres://"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t, "PORT", "TALLY_POLICY", "TALLY_MAX_BALLOTS", "TALLY_MAX_BODY_BYTES")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if _, err := ParseFlags(append(tt.args, "-env-file", "")); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}
