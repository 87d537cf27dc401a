package domain_test

import (
	"testing"

	"vemio-dashboard/internal/navigation/core/domain"
)

func TestOptions_ChildLevelsRequireParent(t *testing.T) {
	empty := domain.FilterState{}

	if got := domain.Options(empty, domain.LevelChannel); len(got) != 3 {
		t.Fatalf("expected 3 channel options, got %d", len(got))
	}
	if got := domain.Options(empty, domain.LevelGeography); len(got) != 0 {
		t.Fatalf("expected no geography options without channel, got %d", len(got))
	}
	if got := domain.Options(empty, domain.LevelCategory); len(got) != 2 {
		t.Fatalf("expected 2 category options, got %d", len(got))
	}
	if got := domain.Options(empty, domain.LevelSegmentation); len(got) != 4 {
		t.Fatalf("expected 4 segmentation options, got %d", len(got))
	}

	s := domain.SetField(empty, domain.LevelChannel, "retail")
	if got := domain.Options(s, domain.LevelGeography); len(got) != 3 {
		t.Fatalf("expected 3 geography options once channel is set, got %d", len(got))
	}
	if got := domain.Options(s, domain.LevelTree); len(got) != 0 {
		t.Fatalf("expected no tree options without geography, got %d", len(got))
	}
}

func TestOptions_UnknownLevel(t *testing.T) {
	if got := domain.Options(domain.FilterState{}, domain.LevelRoot); len(got) != 0 {
		t.Fatalf("expected no options for root, got %d", len(got))
	}
}

func TestParseTimePeriod(t *testing.T) {
	for _, o := range domain.TimePeriodOptions() {
		if _, ok := domain.ParseTimePeriod(o.Value); !ok {
			t.Fatalf("period %q should parse", o.Value)
		}
	}
	if _, ok := domain.ParseTimePeriod("semana"); ok {
		t.Fatalf("semana should not parse")
	}
}
