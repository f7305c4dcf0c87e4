package services

import "testing"

func TestNormalizeSearch(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Alex Smith", "alexsmith"},
		{"Đặng", "đang"},
		{"Café", "cafe"},
		{"  ", ""},
		{"UPPER", "upper"},
	}
	for _, tc := range cases {
		if got := NormalizeSearch(tc.in); got != tc.want {
			t.Errorf("NormalizeSearch(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMatchesSearch(t *testing.T) {
	if !MatchesSearch("alex", "alexsmith", "alex@example.com") {
		t.Error("substring should match username")
	}
	if !MatchesSearch("ALEX", "alexsmith") {
		t.Error("match should ignore case")
	}
	if MatchesSearch("bob", "alexsmith", "alex@example.com") {
		t.Error("unrelated query should not match")
	}
	if !MatchesSearch("", "anything") {
		t.Error("empty query matches everything")
	}
}

func TestRankFuzzy(t *testing.T) {
	candidates := []string{"johnsmith", "johanna", "bob"}

	got := RankFuzzy("jhonsmith", candidates, 2)
	if len(got) != 1 || got[0] != "johnsmith" {
		t.Fatalf("expected transposition to match johnsmith, got %v", got)
	}

	got = RankFuzzy("zzzzz", candidates, 2)
	if len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}

	// Closest candidate comes first.
	got = RankFuzzy("john", []string{"johnn", "john"}, 2)
	if len(got) != 2 || got[0] != "john" {
		t.Errorf("expected exact match ranked first, got %v", got)
	}
}
