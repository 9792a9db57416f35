package bookmarks

import "testing"

func intPtr(n int) *int { return &n }

func eqPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func TestNormalizePaging(t *testing.T) {
	tests := []struct {
		page, perPage         int
		wantPage, wantPerPage int
	}{
		{0, 0, 1, 5},
		{-3, -1, 1, 5},
		{2, 10, 2, 10},
		{1, 100, 1, 100},
		{1, 101, 1, 100},
		{7, 5000, 7, 100},
	}
	for _, tt := range tests {
		p, pp := NormalizePaging(tt.page, tt.perPage)
		if p != tt.wantPage || pp != tt.wantPerPage {
			t.Errorf("NormalizePaging(%d, %d) = (%d, %d), want (%d, %d)",
				tt.page, tt.perPage, p, pp, tt.wantPage, tt.wantPerPage)
		}
	}
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name                 string
		page, perPage, total int
		want                 Meta
	}{
		{
			name: "empty",
			page: 1, perPage: 5, total: 0,
			want: Meta{Page: 1, Pages: 0, TotalCount: 0},
		},
		{
			name: "first of three",
			page: 1, perPage: 5, total: 12,
			want: Meta{Page: 1, Pages: 3, TotalCount: 12, HasNext: true, NextPage: intPtr(2)},
		},
		{
			name: "middle",
			page: 2, perPage: 5, total: 12,
			want: Meta{Page: 2, Pages: 3, TotalCount: 12, HasNext: true, NextPage: intPtr(3), HasPrev: true, PrevPage: intPtr(1)},
		},
		{
			name: "last",
			page: 3, perPage: 5, total: 12,
			want: Meta{Page: 3, Pages: 3, TotalCount: 12, HasPrev: true, PrevPage: intPtr(2)},
		},
		{
			name: "exact multiple",
			page: 2, perPage: 5, total: 10,
			want: Meta{Page: 2, Pages: 2, TotalCount: 10, HasPrev: true, PrevPage: intPtr(1)},
		},
		{
			name: "past the end",
			page: 9, perPage: 5, total: 12,
			want: Meta{Page: 9, Pages: 3, TotalCount: 12, HasPrev: true, PrevPage: intPtr(8)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewMeta(tt.page, tt.perPage, tt.total)
			if got.Page != tt.want.Page || got.Pages != tt.want.Pages || got.TotalCount != tt.want.TotalCount ||
				got.HasNext != tt.want.HasNext || got.HasPrev != tt.want.HasPrev ||
				!eqPtr(got.NextPage, tt.want.NextPage) || !eqPtr(got.PrevPage, tt.want.PrevPage) {
				t.Errorf("NewMeta(%d, %d, %d) = %+v, want %+v", tt.page, tt.perPage, tt.total, got, tt.want)
			}
		})
	}
}
