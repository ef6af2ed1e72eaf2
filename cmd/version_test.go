package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"reflect"
	"strings"
	"testing"
)

// TestVersionCmdStructure verifies that VersionCmd has the required fields.
func TestVersionCmdStructure(t *testing.T) {
	cmd := &VersionCmd{}
	val := reflect.ValueOf(cmd).Elem()

	if !val.FieldByName("Short").IsValid() {
		t.Error("VersionCmd does not have Short field")
	}
	if !val.FieldByName("JSON").IsValid() {
		t.Error("VersionCmd does not have JSON field")
	}
}

// TestCLIHasVersionCommand verifies that the CLI struct includes VersionCmd.
func TestCLIHasVersionCommand(t *testing.T) {
	cli := &CLI{}
	val := reflect.ValueOf(cli).Elem()
	versionField := val.FieldByName("Version")

	if !versionField.IsValid() {
		t.Fatal("CLI struct does not have Version field")
	}
	if versionField.Type().Name() != "VersionCmd" {
		t.Errorf("Version field type: got %s, want VersionCmd", versionField.Type().Name())
	}
}

// TestVersionCmdRunMethod verifies that VersionCmd has a Run() method.
func TestVersionCmdRunMethod(t *testing.T) {
	cmd := &VersionCmd{}
	val := reflect.ValueOf(cmd)

	runMethod := val.MethodByName("Run")
	if !runMethod.IsValid() {
		t.Fatal("VersionCmd does not have Run method")
	}

	methodType := runMethod.Type()
	if methodType.NumIn() != 0 {
		t.Errorf("Run method should have 0 input parameters, got %d", methodType.NumIn())
	}
	if methodType.NumOut() != 1 {
		t.Errorf("Run method should have 1 output parameter, got %d", methodType.NumOut())
	}
}

func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	_ = w.Close()
	os.Stdout = oldStdout
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// TestVersionCmdRun tests the Run method with different flag combinations.
func TestVersionCmdRun(t *testing.T) {
	tests := []struct {
		name          string
		short         bool
		jsonFlag      bool
		expectContain []string
		expectJSON    bool
	}{
		{
			name:          "default output",
			expectContain: []string{"Version:", "Commit:", "Date:"},
		},
		{
			name:  "short output",
			short: true,
		},
		{
			name:       "JSON output",
			jsonFlag:   true,
			expectJSON: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &VersionCmd{Short: tt.short, JSON: tt.jsonFlag}
			var runErr error
			output := captureStdout(t, func() {
				runErr = cmd.Run()
			})
			if runErr != nil {
				t.Fatalf("Run() error = %v", runErr)
			}

			if tt.expectJSON {
				var result map[string]string
				if err := json.Unmarshal([]byte(output), &result); err != nil {
					t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
				}
				for _, field := range []string{"version", "commit", "date"} {
					if _, ok := result[field]; !ok {
						t.Errorf("JSON output missing field: %s", field)
					}
				}
				return
			}

			for _, expected := range tt.expectContain {
				if !strings.Contains(output, expected) {
					t.Errorf("Output does not contain %q\nGot: %s", expected, output)
				}
			}

			if tt.short {
				lines := strings.Split(strings.TrimSpace(output), "\n")
				if len(lines) != 1 {
					t.Errorf("Short output should be single line, got %d lines", len(lines))
				}
				if strings.TrimSpace(output) == "" {
					t.Error("Short output should not be empty")
				}
			}
		})
	}
}

// TestVersionCmdRunExecution is a basic smoke test for the version command.
func TestVersionCmdRunExecution(t *testing.T) {
	var runErr error
	captureStdout(t, func() {
		runErr = (&VersionCmd{}).Run()
	})
	if runErr != nil {
		t.Fatalf("Run() returned error: %v", runErr)
	}
}

// TestVersionOutputFormats tests different output formats produce valid output.
func TestVersionOutputFormats(t *testing.T) {
	tests := []struct {
		name     string
		cmd      *VersionCmd
		validate func(t *testing.T, output string)
	}{
		{
			name: "default format has multiple lines",
			cmd:  &VersionCmd{},
			validate: func(t *testing.T, output string) {
				lines := strings.Split(strings.TrimSpace(output), "\n")
				if len(lines) < 3 {
					t.Errorf("Default output should have at least 3 lines, got %d", len(lines))
				}
			},
		},
		{
			name: "short format is single line",
			cmd:  &VersionCmd{Short: true},
			validate: func(t *testing.T, output string) {
				lines := strings.Split(strings.TrimSpace(output), "\n")
				if len(lines) != 1 {
					t.Errorf("Short output should be exactly 1 line, got %d", len(lines))
				}
			},
		},
		{
			name: "JSON format is valid JSON",
			cmd:  &VersionCmd{JSON: true},
			validate: func(t *testing.T, output string) {
				var result map[string]string
				if err := json.Unmarshal([]byte(output), &result); err != nil {
					t.Errorf("JSON output is not valid: %v\nOutput: %s", err, output)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var runErr error
			output := captureStdout(t, func() {
				runErr = tt.cmd.Run()
			})
			if runErr != nil {
				t.Fatalf("Run() error = %v", runErr)
			}
			tt.validate(t, output)
		})
	}
}
