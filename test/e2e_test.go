package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestSystemIntegration(t *testing.T) {
	// 1. Setup Environment
	rootDir, _ := filepath.Abs("..")
	cmdDir := filepath.Join(rootDir, "cmd", "workbook-recon")
	workDir := t.TempDir()

	binaryName := "workbook-recon-test"
	if runtime.GOOS == "windows" {
		binaryName += ".exe"
	}
	binaryPath := filepath.Join(workDir, binaryName)

	// 2. Build the Application
	t.Logf("Building application from %s...", cmdDir)
	buildCmd := exec.Command("go", "build", "-o", binaryPath, ".")
	buildCmd.Dir = cmdDir
	buildCmd.Stdout = os.Stdout
	buildCmd.Stderr = os.Stderr
	if err := buildCmd.Run(); err != nil {
		t.Fatalf("Failed to build application: %v", err)
	}

	// 3. Generate the sample workbook
	samplePath := filepath.Join(workDir, "sample-cases.xlsx")
	genCmd := exec.Command("go", "run", filepath.Join(rootDir, "scripts", "make_sample.go"), samplePath)
	genCmd.Dir = rootDir
	if output, err := genCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to generate sample workbook: %v\nOutput: %s", err, output)
	}

	// 4. Run the Binary
	t.Log("Running application binary...")
	logPath := filepath.Join(workDir, "logs", "recon.log")
	runCmd := exec.Command(binaryPath, "--no-progress", "--log-file", logPath, samplePath)
	runCmd.Dir = workDir
	var stdout, stderr strings.Builder
	runCmd.Stdout = &stdout
	runCmd.Stderr = &stderr

	if err := runCmd.Run(); err != nil {
		t.Fatalf("Application run failed: %v\nStderr: %s", err, stderr.String())
	}

	// 5. Verify the report
	report := stdout.String()
	expected := []string{
		"Analyzing Excel file: " + samplePath + "\n\n",
		"Workbook contains 4 sheets: PM INFO, Complaint, Summons, Blank\n\n",
		"================================'SHEET: Summons'================================\n",
		"Rows: 2, Columns: 3\n",
		"Filed: 2024-03-15 00:00:00",
		"Notes: Personal service on ...",
		"  Unique file IDs: 2\n",
		"[CONTACT ANALYSIS]\nThis sheet contains 2 potential contact records\n",
		"Sheet is empty\n",
		"Analysis complete!\n",
	}
	for _, want := range expected {
		if !strings.Contains(report, want) {
			t.Errorf("Report missing %q", want)
		} else {
			t.Logf("✅ Verified: %q", strings.TrimSpace(want))
		}
	}
	if strings.Contains(report, "Error analyzing sheet") {
		t.Errorf("Unexpected sheet failure in report:\n%s", report)
	}

	// 6. The log file sink must exist even when nothing failed
	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("Expected log file %s: %v", logPath, err)
	}
}
