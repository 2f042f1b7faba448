package version

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
		wantErr  bool
	}{
		{"older patch", "1.0.0", "1.0.1", -1, false},
		{"older minor", "1.0.0", "1.1.0", -1, false},
		{"older major", "1.0.0", "2.0.0", -1, false},
		{"equal", "1.2.3", "1.2.3", 0, false},
		{"newer", "1.1.0", "1.0.0", 1, false},
		{"v prefix first", "v1.0.0", "1.0.1", -1, false},
		{"v prefix second", "1.0.0", "v1.0.1", -1, false},
		{"prerelease less than release", "1.0.0-beta", "1.0.0", -1, false},
		{"invalid first", "notaversion", "1.0.0", 0, true},
		{"invalid second", "1.0.0", "notaversion", 0, true},
		{"dev version", "dev", "1.0.0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compare(tt.a, tt.b)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		current    string
		expected   bool
		wantErr    bool
	}{
		{"no constraint", "", "0.1.0", true, false},
		{"dev build skips check", ">= 9.0.0", "dev", true, false},
		{"empty build skips check", ">= 9.0.0", "", true, false},
		{"within range", ">= 0.1.0", "0.3.2", true, false},
		{"v prefix current", "^1.2", "v1.4.0", true, false},
		{"too old", ">= 1.0.0", "0.9.0", false, false},
		{"caret major mismatch", "^1.0.0", "2.0.0", false, false},
		{"invalid constraint", "not a range", "1.0.0", false, true},
		{"invalid current", ">= 1.0.0", "notaversion", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Satisfies(tt.constraint, tt.current)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("Satisfies(%q, %q) = %v, want %v", tt.constraint, tt.current, result, tt.expected)
			}
		})
	}
}

func TestRequire(t *testing.T) {
	if err := Require(">= 0.1.0", "0.2.0"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Require(">= 1.0.0", "0.2.0"); err == nil {
		t.Error("expected error for unmet constraint, got nil")
	}
}
