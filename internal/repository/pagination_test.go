package repository

import "testing"

func TestPageRequestNormalized(t *testing.T) {
	tests := []struct {
		in         PageRequest
		want       PageRequest
		wantOffset int
	}{
		{in: PageRequest{}, want: PageRequest{Page: DefaultPage, PageSize: DefaultPageSize}, wantOffset: 0},
		{in: PageRequest{Page: -3, PageSize: 5}, want: PageRequest{Page: 1, PageSize: 5}, wantOffset: 0},
		{in: PageRequest{Page: 2, PageSize: 500}, want: PageRequest{Page: 2, PageSize: MaxPageSize}, wantOffset: MaxPageSize},
		{in: PageRequest{Page: 3, PageSize: 10}, want: PageRequest{Page: 3, PageSize: 10}, wantOffset: 20},
	}
	for _, tc := range tests {
		got := tc.in.normalized()
		if got != tc.want {
			t.Fatalf("normalized(%+v) = %+v, want %+v", tc.in, got, tc.want)
		}
		if got.offset() != tc.wantOffset {
			t.Fatalf("offset(%+v) = %d, want %d", got, got.offset(), tc.wantOffset)
		}
	}
}

func TestNewPageResult(t *testing.T) {
	req := PageRequest{Page: 1, PageSize: 20}
	empty := newPageResult[int](req, nil, 0)
	if empty.TotalPages != 0 || empty.Items == nil {
		t.Fatalf("empty result = %+v", empty)
	}
	if got := newPageResult(req, []int{1}, 41).TotalPages; got != 3 {
		t.Fatalf("expected 3 pages, got %d", got)
	}
	if got := newPageResult(req, []int{1}, 40).TotalPages; got != 2 {
		t.Fatalf("expected 2 pages, got %d", got)
	}
}
