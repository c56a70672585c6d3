package view

import (
	"strings"
	"testing"

	"rulelife/src/universe"

	"github.com/logrusorgru/aurora"
)

func TestRenderArea(t *testing.T) {
	a := universe.NewArea(3, 2, false)
	a.Set(0, 0, true)
	a.Set(1, 1, true)
	got := renderArea(aurora.NewAurora(false), a, 10, 10, "#", ".")
	if want := "#..\n.#."; got != want {
		t.Errorf("renderArea() = %q, want %q", got, want)
	}
}

func TestRenderArea_Crop(t *testing.T) {
	a := universe.NewArea(5, 4, true)
	got := renderArea(aurora.NewAurora(false), a, 2, 3, "#", ".")
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", got)
	}
	if lines[0] != "##" || lines[1] != "##" {
		t.Errorf("unexpected cropped lines %q", lines[:2])
	}
	if !strings.Contains(lines[2], "larger than the viewing area") {
		t.Errorf("expected the crop warning, got %q", lines[2])
	}
}

func TestRenderRuleRow(t *testing.T) {
	plain := renderRuleRow(aurora.NewAurora(false), "Survive", []int{2, 3}, false)
	if want := " S: 0 1 2 3 4 5 6 7 8 "; plain != want {
		t.Errorf("renderRuleRow() = %q, want %q", plain, want)
	}

	au := aurora.NewAurora(true)
	colored := renderRuleRow(au, "Born", []int{3}, true)
	if !strings.Contains(colored, au.Black("3").BgGreen().String()) {
		t.Errorf("enabled count is not highlighted: %q", colored)
	}
	if strings.Contains(colored, au.Black("2").BgGreen().String()) {
		t.Errorf("disabled count is highlighted: %q", colored)
	}
}

func TestRuleAt(t *testing.T) {
	tests := []struct {
		cx, cy     int
		row, count int
		ok         bool
	}{
		{4, 0, ruleRowSurvive, 0, true},
		{5, 0, ruleRowSurvive, 0, true},
		{6, 1, ruleRowBorn, 1, true},
		{20, 0, ruleRowSurvive, 8, true},
		{22, 0, 0, 0, false},
		{2, 0, 0, 0, false},
		{4, 2, 0, 0, false},
	}
	for _, tt := range tests {
		row, count, ok := ruleAt(tt.cx, tt.cy)
		if ok != tt.ok || row != tt.row || count != tt.count {
			t.Errorf("ruleAt(%v, %v) = %v, %v, %v, want %v, %v, %v", tt.cx, tt.cy, row, count, ok, tt.row, tt.count, tt.ok)
		}
	}
}
