package helper

import "testing"

func TestBuildPagination(t *testing.T) {
	p := Paging{Page: 2, PerPage: 10, Offset: 10, Limit: 10}
	pg := BuildPagination(25, p, 10)

	if pg.TotalPages != 3 {
		t.Fatalf("total pages = %d, want 3", pg.TotalPages)
	}
	if !pg.HasNext || !pg.HasPrev {
		t.Fatalf("page 2 of 3 should have both neighbours: %+v", pg)
	}

	last := BuildPagination(25, Paging{Page: 3, PerPage: 10}, 5)
	if last.HasNext {
		t.Fatal("last page must not report a next page")
	}
	if last.Count != 5 {
		t.Fatalf("count = %d, want 5", last.Count)
	}
}
