package member

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMonthlyTarget(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryA, "500"},
		{CategoryB, "300"},
		{CategoryC, "100"},
		{CategoryNone, "0"},
	}
	for _, tt := range tests {
		if got := tt.cat.MonthlyTarget(); !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("MonthlyTarget(%q) = %s, want %s", tt.cat, got, tt.want)
		}
	}
}

func TestTargetSplit_SumsToTarget(t *testing.T) {
	for _, cat := range []Category{CategoryA, CategoryB, CategoryC} {
		s := cat.TargetSplit()
		sum := s.Main.Add(s.Social).Add(s.Welfare)
		if !sum.Equal(cat.MonthlyTarget()) {
			t.Errorf("split of %q sums to %s, want %s", cat, sum, cat.MonthlyTarget())
		}
	}
}

func TestTargetSplit_CategoryC(t *testing.T) {
	s := CategoryC.TargetSplit()
	if !s.Main.Equal(decimal.RequireFromString("75")) {
		t.Errorf("main = %s, want 75", s.Main)
	}
	if !s.Social.Equal(decimal.RequireFromString("17.5")) {
		t.Errorf("social = %s, want 17.5", s.Social)
	}
	if !s.Welfare.Equal(decimal.RequireFromString("7.5")) {
		t.Errorf("welfare = %s, want 7.5", s.Welfare)
	}
}

func TestCategoryValid(t *testing.T) {
	if CategoryNone.Valid() {
		t.Error("none must not be valid")
	}
	if Category("D").Valid() {
		t.Error("unknown category must not be valid")
	}
	if !CategoryA.Valid() {
		t.Error("A must be valid")
	}
}
