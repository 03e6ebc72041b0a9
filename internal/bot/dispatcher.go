package bot

import (
	"context"
	"time"

	"go.uber.org/zap"

	"travelbot/internal/models"
	"travelbot/internal/repositories"
)

// ===========================================================================
// Action Dispatcher
// Nhận tên action + tracker, route đến handler tương ứng
// Mọi lỗi hệ thống được log và thay bằng câu xin lỗi, không lộ ra ngoài
// ===========================================================================

const (
	// ErrorMessage câu trả lời khi hệ thống gặp sự cố (lỗi DB, lỗi nội bộ)
	ErrorMessage = "Xin lỗi, hệ thống đang gặp sự cố. Bạn vui lòng thử lại sau nhé."

	// UnknownActionMessage câu trả lời khi action không được đăng ký
	UnknownActionMessage = "Xin lỗi, tôi chưa hỗ trợ yêu cầu này."
)

// ActionFunc xử lý một action: đọc slots/entities từ tracker, trả về responses
type ActionFunc func(ctx context.Context, tracker *Tracker) ([]Response, error)

// Dispatcher route action name đến handler và ghi lại event
type Dispatcher struct {
	actions map[string]ActionFunc
	events  repositories.EventRecorder
	logger  *zap.Logger
}

// NewDispatcher tạo dispatcher với đầy đủ action handlers đã đăng ký
func NewDispatcher(search repositories.SearchRepository, events repositories.EventRecorder, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		actions: make(map[string]ActionFunc),
		events:  events,
		logger:  logger,
	}

	acts := NewActions(search, NewFormatter())
	d.Register("action_search_destination", acts.SearchDestination)
	d.Register("action_search_hotel", acts.SearchHotel)
	d.Register("action_search_restaurant", acts.SearchRestaurant)
	d.Register("action_search_activity", acts.SearchActivity)
	d.Register("action_search_tour", acts.SearchTour)
	d.Register("action_get_weather", acts.GetWeather)
	d.Register("action_get_transportation", acts.GetTransportation)
	d.Register("action_get_reviews", acts.GetReviews)
	d.Register("action_recommend_budget", NewBudgetAction(search).Recommend)
	d.Register("action_compare_destinations", acts.CompareDestinations)
	d.Register("action_packing_list", PackingList)
	d.Register("action_travel_documents", TravelDocuments)
	d.Register("action_cultural_notes", CulturalNotes)

	return d
}

// Register đăng ký một action handler, ghi đè nếu trùng tên
func (d *Dispatcher) Register(name string, fn ActionFunc) {
	d.actions[name] = fn
}

// Dispatch chạy action theo tên. Không bao giờ trả error ra caller:
// action không tồn tại hoặc lỗi nội bộ đều được chuyển thành text response
func (d *Dispatcher) Dispatch(ctx context.Context, name string, tracker *Tracker) []Response {
	fn, ok := d.actions[name]
	if !ok {
		d.logger.Warn("Action không được đăng ký", zap.String("action", name))
		return []Response{TextResponse(UnknownActionMessage)}
	}

	responses, err := fn(ctx, tracker)
	if err != nil {
		d.logger.Error("Action thất bại",
			zap.String("action", name),
			zap.String("sender_id", tracker.SenderID),
			zap.Error(err),
		)
		responses = []Response{TextResponse(ErrorMessage)}
	}

	d.recordEvent(ctx, name, tracker)
	return responses
}

// recordEvent ghi event dạng best-effort: lỗi chỉ được log, không chặn response
func (d *Dispatcher) recordEvent(ctx context.Context, name string, tracker *Tracker) {
	if d.events == nil {
		return
	}

	event := &models.Event{
		SenderID:   tracker.SenderID,
		TypeName:   "action",
		Timestamp:  float64(time.Now().UnixMilli()) / 1000,
		IntentName: tracker.LatestMessage.Intent.Name,
		ActionName: name,
		Data:       tracker.LatestMessage.Text,
	}
	if err := d.events.Record(ctx, event); err != nil {
		d.logger.Warn("Không ghi được event", zap.String("action", name), zap.Error(err))
	}
}
