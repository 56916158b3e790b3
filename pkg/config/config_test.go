package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	apperr "github.com/matzehuels/portlayout/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if diff := cmp.Diff([]int{1, 2, 3, 4, 6, 8}, cfg.Counts); diff != "" {
		t.Errorf("Default().Counts mismatch (-want +got):\n%s", diff)
	}
	if len(cfg.Devices) != 0 {
		t.Errorf("Default().Devices = %v, want none", cfg.Devices)
	}

	// Mutating the returned config must not leak into the defaults.
	cfg.Counts[0] = 99
	if DefaultCounts[0] != 1 {
		t.Error("Default() shares its backing array with DefaultCounts")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     Config
		wantCode apperr.Code
	}{
		{
			name:  "empty keeps defaults",
			input: "",
			want:  Config{Counts: []int{1, 2, 3, 4, 6, 8}},
		},
		{
			name:  "counts and devices",
			input: "counts = [0, 5, 12]\ndevices = [\"router\", \"Switch\"]\n",
			want:  Config{Counts: []int{0, 5, 12}, Devices: []string{"router", "Switch"}},
		},
		{
			name:     "negative count",
			input:    "counts = [3, -1]",
			wantCode: apperr.ErrCodeInvalidConfig,
		},
		{
			name:     "unknown device",
			input:    "devices = [\"modem\"]",
			wantCode: apperr.ErrCodeInvalidConfig,
		},
		{
			name:     "malformed",
			input:    "counts = [1, 2",
			wantCode: apperr.ErrCodeInvalidConfig,
		},
		{
			name:     "unknown key",
			input:    "edges = 3",
			wantCode: apperr.ErrCodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if tt.wantCode != "" {
				if !apperr.Is(err, tt.wantCode) {
					t.Fatalf("Parse() error = %v, want code %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseWrapsDeviceError(t *testing.T) {
	_, err := Parse([]byte(`devices = ["modem"]`))
	if !apperr.Is(err, apperr.ErrCodeInvalidConfig) {
		t.Fatalf("outer code = %q", apperr.GetCode(err))
	}
	if got := apperr.UserMessage(err); got != "devices" {
		t.Errorf("UserMessage() = %q, want %q", got, "devices")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portlayout.toml")
	if err := os.WriteFile(path, []byte("counts = [2, 4]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff([]int{2, 4}, cfg.Counts); diff != "" {
		t.Errorf("Counts mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !apperr.Is(err, apperr.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}
