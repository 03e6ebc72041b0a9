package bot

import (
	"context"
	"strings"
)

// ===========================================================================
// Static-knowledge Actions
// Không query database, trả về nội dung tư vấn cố định
// Chọn nội dung bằng keyword matching đơn giản trên slot text
// ===========================================================================

const packingBeach = `Gợi ý hành lý cho chuyến đi biển:

• Đồ bơi, kính bơi
• Kem chống nắng SPF 50+
• Mũ rộng vành, kính râm
• Dép xỏ ngón, giày đi nước
• Quần áo mỏng nhẹ, thoáng mát
• Túi chống nước cho điện thoại
• Thuốc chống say sóng (nếu đi đảo)`

const packingMountain = `Gợi ý hành lý cho chuyến đi núi:

• Áo khoác ấm, áo mưa
• Giày leo núi hoặc giày thể thao đế bám
• Đèn pin, sạc dự phòng
• Thuốc chống côn trùng
• Nước uống và đồ ăn nhẹ
• Găng tay, mũ len (vùng cao lạnh về đêm)`

const packingGeneral = `Gợi ý hành lý cơ bản:

• Giấy tờ tùy thân (CCCD/hộ chiếu)
• Quần áo phù hợp thời tiết
• Thuốc cá nhân cơ bản
• Sạc điện thoại, sạc dự phòng
• Tiền mặt và thẻ ngân hàng
• Kem chống nắng, kính râm`

const travelDocuments = `Giấy tờ cần thiết khi du lịch trong nước:

• CCCD hoặc hộ chiếu còn hạn (bắt buộc khi đi máy bay, nhận phòng khách sạn)
• Giấy khai sinh cho trẻ em dưới 14 tuổi
• Bằng lái xe nếu thuê xe tự lái
• Vé máy bay/tàu/xe và xác nhận đặt phòng (bản điện tử được chấp nhận)

Lưu ý: một số đảo gần biên giới (như Cô Tô, Lý Sơn) có thể yêu cầu thêm thủ tục với khách nước ngoài.`

const culturalNotes = `Một số lưu ý văn hóa khi du lịch Việt Nam:

• Ăn mặc kín đáo khi vào chùa, đền, nhà thờ
• Bỏ giày dép khi vào nhà dân và nơi thờ tự
• Hỏi trước khi chụp ảnh người dân địa phương
• Mặc cả khi mua sắm ở chợ là bình thường, nhưng nên vui vẻ
• Không xoa đầu trẻ em
• Giữ gìn vệ sinh chung, không xả rác tại điểm tham quan`

// PackingList gợi ý hành lý theo loại địa hình trong slot destination/category
func PackingList(ctx context.Context, tracker *Tracker) ([]Response, error) {
	hint := strings.ToLower(tracker.Slot("destination") + " " + tracker.Slot("category"))

	switch {
	case strings.Contains(hint, "biển") || strings.Contains(hint, "đảo"):
		return []Response{TextResponse(packingBeach)}, nil
	case strings.Contains(hint, "núi") || strings.Contains(hint, "trekking"):
		return []Response{TextResponse(packingMountain)}, nil
	default:
		return []Response{TextResponse(packingGeneral)}, nil
	}
}

// TravelDocuments tư vấn giấy tờ cần mang theo
func TravelDocuments(ctx context.Context, tracker *Tracker) ([]Response, error) {
	return []Response{TextResponse(travelDocuments)}, nil
}

// CulturalNotes lưu ý văn hóa địa phương
func CulturalNotes(ctx context.Context, tracker *Tracker) ([]Response, error) {
	return []Response{TextResponse(culturalNotes)}, nil
}
