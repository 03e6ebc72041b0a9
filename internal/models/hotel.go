package models

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ===========================================================================
// Hotel - khách sạn thuộc một Destination
// ===========================================================================

// Price tier vocabulary - dùng cho filter và bảng tra chi phí ngân sách
const (
	PriceTierCheap   = "rẻ"
	PriceTierMid     = "trung bình"
	PriceTierPremium = "cao cấp"
)

// Hotel khách sạn
type Hotel struct {
	BaseModel

	// Name tên khách sạn
	Name string `gorm:"size:255;not null" json:"name"`

	// Address địa chỉ
	Address string `gorm:"type:text" json:"address"`

	// DestinationID địa điểm chứa khách sạn
	DestinationID uuid.UUID `gorm:"type:uuid;index" json:"destination_id"`

	// StarRating hạng sao 1-5
	StarRating int `json:"star_rating"`

	// PriceRange mức giá: "rẻ" / "trung bình" / "cao cấp"
	PriceRange string `gorm:"size:50" json:"price_range"`

	// Rating điểm đánh giá 0-5
	Rating float64 `gorm:"type:numeric(2,1);default:0" json:"rating"`

	// RawAmenities giá trị amenities như lưu trong DB
	// Cột này từng được ghi bởi nhiều phiên bản serializer khác nhau nên
	// có thể chứa JSON array, JSON object, chuỗi phân tách bằng dấu phẩy,
	// một chuỗi đơn, hoặc artifact dạng mảng từng ký tự của một chuỗi JSON
	RawAmenities string `gorm:"column:amenities;type:text" json:"-"`

	// Amenities danh sách tiện nghi đã chuẩn hóa, chỉ dùng cho response
	Amenities []string `gorm:"-" json:"amenities"`
}

func (Hotel) TableName() string {
	return "hotels"
}

// NormalizeAmenities đọc RawAmenities và gán Amenities dạng list sạch
func (h *Hotel) NormalizeAmenities() {
	h.Amenities = ParseAmenities(h.RawAmenities)
}

// SetAmenities encode danh sách tiện nghi về dạng JSON để lưu DB
func (h *Hotel) SetAmenities(list []string) {
	if len(list) == 0 {
		h.RawAmenities = ""
		h.Amenities = nil
		return
	}
	encoded, err := json.Marshal(list)
	if err != nil {
		return
	}
	h.RawAmenities = string(encoded)
	h.Amenities = list
}

// ParseAmenities chuẩn hóa giá trị amenities về danh sách string sạch.
// Thứ tự nhận dạng:
//  1. JSON array - nếu mọi phần tử là chuỗi 1 ký tự thì đây là artifact
//     "mảng ký tự" từ một serializer cũ: ghép lại và parse lần nữa
//  2. JSON object - lấy các key có giá trị truthy
//  3. Chuỗi chứa dấu phẩy - tách theo dấu phẩy
//  4. Chuỗi đơn - list một phần tử
//
// Lỗi parse được bỏ qua, fallback trả về giá trị thô.
func ParseAmenities(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		if parsed, ok := parseAmenitiesJSON(trimmed); ok {
			return parsed
		}
		// JSON hỏng: giữ nguyên giá trị thô
		return []string{raw}
	}

	if strings.Contains(trimmed, ",") {
		parts := strings.Split(trimmed, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				out = append(out, s)
			}
		}
		return out
	}

	return []string{trimmed}
}

func parseAmenitiesJSON(s string) ([]string, bool) {
	var arr []interface{}
	if err := json.Unmarshal([]byte(s), &arr); err == nil {
		if joined, ok := joinCharList(arr); ok {
			// Artifact mảng ký tự: parse chuỗi đã ghép
			if parsed, ok := parseAmenitiesJSON(strings.TrimSpace(joined)); ok {
				return parsed, true
			}
			return nil, false
		}
		out := make([]string, 0, len(arr))
		for _, v := range arr {
			if str, ok := v.(string); ok && str != "" {
				out = append(out, str)
			}
		}
		return out, true
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(s), &obj); err == nil {
		out := make([]string, 0, len(obj))
		for k, v := range obj {
			if truthy(v) {
				out = append(out, k)
			}
		}
		sort.Strings(out)
		return out, true
	}

	return nil, false
}

// joinCharList phát hiện mảng mà mọi phần tử là chuỗi đúng 1 ký tự
func joinCharList(arr []interface{}) (string, bool) {
	if len(arr) == 0 {
		return "", false
	}
	var sb strings.Builder
	for _, v := range arr {
		s, ok := v.(string)
		if !ok || len([]rune(s)) != 1 {
			return "", false
		}
		sb.WriteString(s)
	}
	joined := sb.String()
	if !strings.HasPrefix(strings.TrimSpace(joined), "[") && !strings.HasPrefix(strings.TrimSpace(joined), "{") {
		return "", false
	}
	return joined, true
}

func truthy(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	case nil:
		return false
	default:
		return true
	}
}
