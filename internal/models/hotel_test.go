package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmenitiesJSONArray(t *testing.T) {
	got := ParseAmenities(`["wifi","hồ bơi","bữa sáng"]`)
	require.Equal(t, []string{"wifi", "hồ bơi", "bữa sáng"}, got)
}

func TestParseAmenitiesJSONObject(t *testing.T) {
	got := ParseAmenities(`{"wifi":true,"spa":false,"gym":1,"parking":""}`)
	// Chỉ key truthy, sắp alphabet cho ổn định
	require.Equal(t, []string{"gym", "wifi"}, got)
}

func TestParseAmenitiesCharListArtifact(t *testing.T) {
	// Serializer cũ từng ghi JSON string thành mảng từng ký tự
	original := `["wifi","spa"]`
	chars := make([]string, 0, len([]rune(original)))
	for _, r := range original {
		chars = append(chars, string(r))
	}
	encoded, err := json.Marshal(chars)
	require.NoError(t, err)

	got := ParseAmenities(string(encoded))
	require.Equal(t, []string{"wifi", "spa"}, got)
}

func TestParseAmenitiesCommaString(t *testing.T) {
	got := ParseAmenities("wifi, hồ bơi ,spa")
	require.Equal(t, []string{"wifi", "hồ bơi", "spa"}, got)
}

func TestParseAmenitiesBareString(t *testing.T) {
	got := ParseAmenities("wifi")
	require.Equal(t, []string{"wifi"}, got)
}

func TestParseAmenitiesBrokenJSONFallsBackToRaw(t *testing.T) {
	raw := `["wifi",`
	got := ParseAmenities(raw)
	require.Equal(t, []string{raw}, got)
}

func TestParseAmenitiesEmpty(t *testing.T) {
	require.Nil(t, ParseAmenities(""))
	require.Nil(t, ParseAmenities("   "))
}

func TestSetAmenitiesRoundTrip(t *testing.T) {
	var h Hotel
	h.SetAmenities([]string{"wifi", "hồ bơi"})
	require.Equal(t, `["wifi","hồ bơi"]`, h.RawAmenities)

	var out Hotel
	out.RawAmenities = h.RawAmenities
	out.NormalizeAmenities()
	require.Equal(t, []string{"wifi", "hồ bơi"}, out.Amenities)
}
