package aggregate

import (
	"testing"

	"github.com/tariktz/linkxtract/internal/resolve"
)

func TestAggregatePreservesOrder(t *testing.T) {
	links := []resolve.Resolved{
		{URL: "https://example.com/b"},
		{URL: "https://example.com/a"},
	}
	got := Aggregate(links, Options{})
	if len(got) != 2 || got[0].URL != "https://example.com/b" || got[1].URL != "https://example.com/a" {
		t.Fatalf("got %+v", got)
	}
}

func TestAggregateUnique(t *testing.T) {
	links := []resolve.Resolved{
		{URL: "https://example.com/a", Text: "first"},
		{URL: "https://example.com/a", Text: "second"},
		{URL: "https://example.com/b"},
	}
	got := Aggregate(links, Options{Unique: true})
	if len(got) != 2 {
		t.Fatalf("got %d, want 2: %+v", len(got), got)
	}
	if got[0].Text != "first" {
		t.Errorf("expected first occurrence to win, got %q", got[0].Text)
	}
}

func TestAggregateNoUniqueKeepsDuplicates(t *testing.T) {
	links := []resolve.Resolved{
		{URL: "https://example.com/a"},
		{URL: "https://example.com/a"},
	}
	got := Aggregate(links, Options{Unique: false})
	if len(got) != 2 {
		t.Fatalf("got %d, want 2", len(got))
	}
}

func TestAggregateCanonicalizeThenUnique(t *testing.T) {
	links := []resolve.Resolved{
		{URL: "https://example.com/page?b=2&a=1"},
		{URL: "https://example.com/page?a=1&b=2"},
	}
	got := Aggregate(links, Options{Canonicalize: true, Unique: true})
	if len(got) != 1 {
		t.Fatalf("canonicalize should have unified query param order, got %+v", got)
	}
}
