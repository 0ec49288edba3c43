package model_test

import (
	"testing"

	"github.com/w4sspr/rockfon-reorder/internal/model"
)

func TestUrgencySeverityOrder(t *testing.T) {
	// 数值越小越紧急，排序直接用枚举值做主键
	if !(model.UrgencyCritical < model.UrgencyUrgent &&
		model.UrgencyUrgent < model.UrgencyWarning &&
		model.UrgencyWarning < model.UrgencyOK) {
		t.Fatalf("severity order broken: %d %d %d %d",
			model.UrgencyCritical, model.UrgencyUrgent, model.UrgencyWarning, model.UrgencyOK)
	}
}

func TestUrgencyLabels(t *testing.T) {
	tests := []struct {
		urgency model.Urgency
		label   string
	}{
		{model.UrgencyCritical, "Critical"},
		{model.UrgencyUrgent, "Urgent"},
		{model.UrgencyWarning, "Warning"},
		{model.UrgencyOK, "OK"},
	}

	for _, tt := range tests {
		if got := tt.urgency.Label(); got != tt.label {
			t.Fatalf("Label()=%q, want %q", got, tt.label)
		}
		if tt.urgency.Emoji() == "" {
			t.Fatalf("%s should have an emoji", tt.label)
		}
	}
}

func TestLayoutFor(t *testing.T) {
	std := model.LayoutFor("Tiles")
	if std != model.StandardLayout {
		t.Fatalf("LayoutFor(Tiles)=%+v, want standard", std)
	}

	wood := model.LayoutFor("Wood")
	if wood != model.WoodLayout {
		t.Fatalf("LayoutFor(Wood)=%+v, want wood layout", wood)
	}
	// Wood 布局：QOH 在月均用量之后（Lead Time 挤占了 F 列）
	if wood.QOH != 7 || wood.Avg != 6 {
		t.Fatalf("wood layout qoh=%d avg=%d, want 7/6", wood.QOH, wood.Avg)
	}

	if got := model.LayoutFor("Some Future Sheet"); got != model.StandardLayout {
		t.Fatalf("unknown sheet should fall back to standard layout, got %+v", got)
	}
}

func TestLayoutMaxIndex(t *testing.T) {
	if got, want := model.StandardLayout.MaxIndex(), 6; got != want {
		t.Fatalf("standard MaxIndex=%d, want %d", got, want)
	}
	if got, want := model.WoodLayout.MaxIndex(), 7; got != want {
		t.Fatalf("wood MaxIndex=%d, want %d", got, want)
	}
}
