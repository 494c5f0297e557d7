package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestTrianglesOptionsUseNonZeroRule(t *testing.T) {
	op := trianglesOptions()
	if op.FillRule != ebiten.FillRuleNonZero {
		t.Errorf("fill rule = %v, want FillRuleNonZero", op.FillRule)
	}
	if !op.AntiAlias {
		t.Error("anti-aliasing disabled")
	}
}
