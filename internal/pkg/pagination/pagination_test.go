package pagination

import "testing"

func TestClampDefaults(t *testing.T) {
	p := Clamp(0, 0)
	if p.Page != 1 || p.Limit != 10 {
		t.Fatalf("expected defaults 1/10, got %d/%d", p.Page, p.Limit)
	}
}

func TestClampNegativePage(t *testing.T) {
	p := Clamp(-3, 20)
	if p.Page != 1 {
		t.Fatalf("expected page 1, got %d", p.Page)
	}
	if p.Limit != 20 {
		t.Fatalf("expected limit 20, got %d", p.Limit)
	}
}

func TestClampLimitCap(t *testing.T) {
	p := Clamp(2, 1000)
	if p.Limit != 50 {
		t.Fatalf("expected limit capped to 50, got %d", p.Limit)
	}
	if p.Page != 2 {
		t.Fatalf("expected page preserved, got %d", p.Page)
	}
}

func TestOffset(t *testing.T) {
	p := Clamp(3, 10)
	if p.Offset() != 20 {
		t.Fatalf("expected offset 20, got %d", p.Offset())
	}
	if Clamp(1, 10).Offset() != 0 {
		t.Fatalf("expected offset 0 for first page")
	}
}

func TestNewEnvelope(t *testing.T) {
	pg := New(45, Clamp(2, 10))
	if pg.TotalPages != 5 {
		t.Fatalf("expected 5 total pages, got %d", pg.TotalPages)
	}
	if !pg.HasNext || !pg.HasPrev {
		t.Fatalf("middle page should have next and prev")
	}
}

func TestNewEnvelopeBounds(t *testing.T) {
	first := New(45, Clamp(1, 10))
	if first.HasPrev {
		t.Fatalf("first page should not have prev")
	}
	last := New(45, Clamp(5, 10))
	if last.HasNext {
		t.Fatalf("last page should not have next")
	}
	empty := New(0, Clamp(1, 10))
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev {
		t.Fatalf("empty result set should have zero pages and no navigation")
	}
}

func TestNewEnvelopePartialLastPage(t *testing.T) {
	pg := New(11, Clamp(1, 10))
	if pg.TotalPages != 2 {
		t.Fatalf("expected ceil(11/10)=2 pages, got %d", pg.TotalPages)
	}
	if !pg.HasNext {
		t.Fatalf("expected next page")
	}
}
