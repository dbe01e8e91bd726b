package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressBarWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	pb := NewProgressBarWithOutput(PhaseSheets, 3, &buf)

	pb.Describe("Summons")
	for i := 0; i < 3; i++ {
		if err := pb.Increment(); err != nil {
			t.Fatalf("Increment failed: %v", err)
		}
	}
	if err := pb.Finish(); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	if !strings.Contains(buf.String(), "[Sheets]") {
		t.Errorf("progress output missing phase: %q", buf.String())
	}
}

func TestForSheetsDisabled(t *testing.T) {
	if _, ok := ForSheets(false, 5).(nopProgress); !ok {
		t.Error("expected a silent progress when disabled")
	}
	if _, ok := ForSheets(true, 0).(nopProgress); !ok {
		t.Error("expected a silent progress for zero sheets")
	}
}

func TestDiscard(t *testing.T) {
	p := Discard()
	p.Describe("anything")
	if err := p.Increment(); err != nil {
		t.Errorf("Increment returned %v", err)
	}
	if err := p.Finish(); err != nil {
		t.Errorf("Finish returned %v", err)
	}
}
