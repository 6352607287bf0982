package htmldoc

import "testing"

func TestFindMatchesTagAndClassToken(t *testing.T) {
	t.Parallel()

	doc := Parse(t, `<html><body><nav><a class="portal-nav-link active" href="/donor">Impact   Overview</a><a class="portal-nav-link" href="/donor/donations">My Donations</a></nav><button disabled>Next</button></body></html>`)

	if got := len(doc.Find("a", "class", "portal-nav-link")); got != 2 {
		t.Fatalf("Find(a.portal-nav-link) = %d, want 2", got)
	}
	active := doc.First("a", "class", "active")
	if got := Attr(active, "href"); got != "/donor" {
		t.Fatalf("active href = %q, want %q", got, "/donor")
	}
	if got := NodeText(active); got != "Impact Overview" {
		t.Fatalf("NodeText = %q, want %q", got, "Impact Overview")
	}
	if !HasAttr(doc.First("button"), "disabled") {
		t.Fatal("expected disabled button")
	}
	if links := doc.Links(); len(links) != 2 || links[1] != "/donor/donations" {
		t.Fatalf("Links() = %v", links)
	}
	if !doc.HasText("My Donations") {
		t.Fatal("HasText(My Donations) = false")
	}
}
