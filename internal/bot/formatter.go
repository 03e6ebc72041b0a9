package bot

import (
	"fmt"
	"strconv"
	"strings"

	"travelbot/internal/models"
	"travelbot/internal/repositories"
)

// ===========================================================================
// Result Formatter
// Biến danh sách records thành text block tiếng Việt theo template cố định
// Thuần túy: cùng input luôn cho cùng output, không có state
// ===========================================================================

const (
	// NoResultsMessage trả về khi query không có kết quả, mọi entity type
	NoResultsMessage = "Xin lỗi, tôi không tìm thấy kết quả phù hợp."

	// maxListed số item tối đa được liệt kê trong một response
	maxListed = 5

	// maxDescription số ký tự tối đa của trường mô tả trước khi cắt
	maxDescription = 100
)

// Formatter format kết quả query thành text tiếng Việt
// Tách riêng để dễ test và tái sử dụng
type Formatter struct{}

// NewFormatter tạo instance mới của Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Destinations format danh sách địa điểm
func (f *Formatter) Destinations(items []models.Destination) string {
	if len(items) == 0 {
		return NoResultsMessage
	}

	var sb strings.Builder
	writeHeader(&sb, len(items))
	for i, item := range items[:capped(len(items))] {
		fmt.Fprintf(&sb, "%d. %s - %s\n", i+1, item.Name, item.Province)
		fmt.Fprintf(&sb, "   Loại: %s\n", item.Category)
		fmt.Fprintf(&sb, "   Đánh giá: %s/5\n", formatRating(item.Rating))
		fmt.Fprintf(&sb, "   %s\n\n", Truncate(item.Description, maxDescription))
	}
	writeMore(&sb, len(items))
	return sb.String()
}

// Hotels format danh sách khách sạn
func (f *Formatter) Hotels(items []models.Hotel) string {
	if len(items) == 0 {
		return NoResultsMessage
	}

	var sb strings.Builder
	writeHeader(&sb, len(items))
	for i, item := range items[:capped(len(items))] {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, item.Name)
		fmt.Fprintf(&sb, "   Địa chỉ: %s\n", item.Address)
		fmt.Fprintf(&sb, "   Hạng sao: %d sao\n", item.StarRating)
		fmt.Fprintf(&sb, "   Giá: %s\n\n", item.PriceRange)
	}
	writeMore(&sb, len(items))
	return sb.String()
}

// Restaurants format danh sách nhà hàng
func (f *Formatter) Restaurants(items []models.Restaurant) string {
	if len(items) == 0 {
		return NoResultsMessage
	}

	var sb strings.Builder
	writeHeader(&sb, len(items))
	for i, item := range items[:capped(len(items))] {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, item.Name)
		fmt.Fprintf(&sb, "   Loại: %s\n", item.CuisineType)
		fmt.Fprintf(&sb, "   Giá: %s\n", item.PriceRange)
		fmt.Fprintf(&sb, "   Đánh giá: %s/5\n\n", formatRating(item.Rating))
	}
	writeMore(&sb, len(items))
	return sb.String()
}

// Activities format danh sách hoạt động
func (f *Formatter) Activities(items []models.Activity) string {
	if len(items) == 0 {
		return NoResultsMessage
	}

	var sb strings.Builder
	writeHeader(&sb, len(items))
	for i, item := range items[:capped(len(items))] {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, item.Name)
		fmt.Fprintf(&sb, "   Loại: %s\n", item.Type)
		fmt.Fprintf(&sb, "   Giá: %s VNĐ\n", FormatVND(int64(item.Price)))
		fmt.Fprintf(&sb, "   Thời gian: %s\n\n", item.Duration)
	}
	writeMore(&sb, len(items))
	return sb.String()
}

// Tours format danh sách tour
func (f *Formatter) Tours(items []models.Tour) string {
	if len(items) == 0 {
		return NoResultsMessage
	}

	var sb strings.Builder
	writeHeader(&sb, len(items))
	for i, item := range items[:capped(len(items))] {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, item.Name)
		fmt.Fprintf(&sb, "   Thời gian: %d ngày\n", item.DurationDays)
		fmt.Fprintf(&sb, "   Giá: %s VNĐ\n\n", FormatVND(int64(item.Price)))
	}
	writeMore(&sb, len(items))
	return sb.String()
}

// Weather format thời tiết theo tháng của một địa điểm
func (f *Formatter) Weather(rows []repositories.WeatherInfo, requested string) string {
	if len(rows) == 0 {
		return fmt.Sprintf("Xin lỗi, tôi không có thông tin thời tiết cho %s.", requested)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Thời tiết tại %s:\n\n", rows[0].DestinationName)
	for _, row := range rows {
		fmt.Fprintf(&sb, "Tháng %d: %s, nhiệt độ trung bình %s°C", row.Month, row.Description, formatRating(row.AvgTemp))
		if row.IsBestTime {
			sb.WriteString(" (thời điểm lý tưởng)")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Transport format các phương tiện giữa hai địa điểm
func (f *Formatter) Transport(rows []repositories.TransportOption, from, to string) string {
	if len(rows) == 0 {
		return fmt.Sprintf("Xin lỗi, tôi không tìm thấy thông tin di chuyển từ %s đến %s.", from, to)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Các phương tiện từ %s đến %s:\n\n", rows[0].FromName, rows[0].ToName)
	for _, row := range rows {
		fmt.Fprintf(&sb, "• %s: Thời gian ~%s, Giá %s\n", capitalize(row.Type), row.Duration, row.PriceRange)
	}
	return sb.String()
}

// Reviews format đánh giá về một địa điểm kèm điểm trung bình
func (f *Formatter) Reviews(rows []repositories.ReviewInfo, requested string) string {
	if len(rows) == 0 {
		return fmt.Sprintf("Chưa có đánh giá về %s.", requested)
	}

	sum := 0
	for _, row := range rows {
		sum += row.Rating
	}
	avg := float64(sum) / float64(len(rows))

	var sb strings.Builder
	fmt.Fprintf(&sb, "Đánh giá về %s:\n", rows[0].DestinationName)
	fmt.Fprintf(&sb, "Điểm trung bình: %s/5 (%d đánh giá)\n\n", formatRating(avg), len(rows))

	shown := len(rows)
	if shown > 3 {
		shown = 3
	}
	for i, row := range rows[:shown] {
		fmt.Fprintf(&sb, "%d. %d/5 - %s\n", i+1, row.Rating, Truncate(row.Comment, maxDescription))
	}
	return sb.String()
}

// ===========================================================================
// Helpers
// ===========================================================================

func writeHeader(sb *strings.Builder, total int) {
	fmt.Fprintf(sb, "Tôi tìm thấy %d kết quả:\n\n", total)
}

func writeMore(sb *strings.Builder, total int) {
	if total > maxListed {
		fmt.Fprintf(sb, "... và còn %d kết quả khác.\n", total-maxListed)
	}
}

func capped(n int) int {
	if n > maxListed {
		return maxListed
	}
	return n
}

// Truncate cắt chuỗi còn tối đa n ký tự (tính theo rune, không phải byte,
// vì text tiếng Việt) và thêm dấu "..." khi bị cắt
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// FormatVND format số tiền VNĐ với dấu phân tách hàng nghìn
func FormatVND(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	s := strconv.FormatInt(v, 10)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return sign + strings.Join(parts, ",")
}

// formatRating format điểm đánh giá với một chữ số thập phân
func formatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// capitalize viết hoa ký tự đầu (theo rune)
func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
