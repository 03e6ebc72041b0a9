package query

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderSkipsEmptyFilters(t *testing.T) {
	b := NewBuilder().
		Contains("province", "").
		Contains("region", "   ").
		Contains("category", "biển")

	conds, args := b.Conditions()
	require.Equal(t, "LOWER(category) LIKE LOWER(?)", conds)
	require.Equal(t, []interface{}{"%biển%"}, args)
}

func TestBuilderNilValueSkipped(t *testing.T) {
	b := NewBuilder().Where(Filter{Column: "rating", Value: nil, Match: MatchExact})

	conds, args := b.Conditions()
	require.Empty(t, conds)
	require.Empty(t, args)
}

func TestBuilderAndsMultipleFilters(t *testing.T) {
	b := NewBuilder().
		Contains("d.name", "Đà Nẵng").
		Equals("hotels.star_rating", 5)

	conds, args := b.Conditions()
	require.Equal(t, "LOWER(d.name) LIKE LOWER(?) AND hotels.star_rating = ?", conds)
	require.Equal(t, []interface{}{"%Đà Nẵng%", 5}, args)
}

func TestBuilderTrimsContainsValue(t *testing.T) {
	b := NewBuilder().Contains("province", "  Quảng Nam ")

	_, args := b.Conditions()
	require.Equal(t, []interface{}{"%Quảng Nam%"}, args)
}

func TestExtractDigits(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"5 sao", 5, true},
		{"3 ngày", 3, true},
		{"khoảng 10 người", 10, true},
		{"tháng 12", 12, true},
		{"", 0, false},
		{"không rõ", 0, false},
		{"một tuần", 0, false},
	}

	for _, tt := range tests {
		got, ok := ExtractDigits(tt.in)
		require.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		require.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
