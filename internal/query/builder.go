package query

import (
	"strings"

	"gorm.io/gorm"
)

// ===========================================================================
// Query Builder
// Tích lũy các cặp (clause, bound-value) từ slot values và render thành
// câu query có tham số - thay cho cách nối chuỗi SQL thủ công
// Filter rỗng bị bỏ qua hoàn toàn (không so sánh)
// ===========================================================================

// Match chế độ so khớp của một filter
type Match int

const (
	// MatchExact so sánh bằng
	MatchExact Match = iota

	// MatchContains substring không phân biệt hoa thường
	MatchContains
)

// Filter một điều kiện lọc trên một cột
type Filter struct {
	// Column tên cột (có thể kèm table alias, VD "d.name")
	Column string

	// Value giá trị filter; nil hoặc chuỗi rỗng sẽ bị bỏ qua
	Value interface{}

	// Match chế độ so khớp
	Match Match
}

// Builder tích lũy các điều kiện filter và render lên *gorm.DB
type Builder struct {
	conds   []string
	args    []interface{}
	orderBy string
	limit   int
}

// NewBuilder tạo builder mới
func NewBuilder() *Builder {
	return &Builder{}
}

// Where thêm một filter; giá trị rỗng bị bỏ qua
func (b *Builder) Where(f Filter) *Builder {
	if isEmpty(f.Value) {
		return b
	}

	switch f.Match {
	case MatchContains:
		s, ok := f.Value.(string)
		if !ok {
			return b
		}
		// LOWER(...) LIKE LOWER(?) chạy được trên cả Postgres và SQLite
		b.conds = append(b.conds, "LOWER("+f.Column+") LIKE LOWER(?)")
		b.args = append(b.args, "%"+strings.TrimSpace(s)+"%")
	default:
		b.conds = append(b.conds, f.Column+" = ?")
		b.args = append(b.args, f.Value)
	}

	return b
}

// Equals shorthand cho filter so sánh bằng
func (b *Builder) Equals(column string, value interface{}) *Builder {
	return b.Where(Filter{Column: column, Value: value, Match: MatchExact})
}

// Contains shorthand cho filter substring không phân biệt hoa thường
func (b *Builder) Contains(column, value string) *Builder {
	return b.Where(Filter{Column: column, Value: value, Match: MatchContains})
}

// OrderBy đặt mệnh đề sắp xếp cố định (VD "rating DESC")
func (b *Builder) OrderBy(clause string) *Builder {
	b.orderBy = clause
	return b
}

// Limit đặt trần số kết quả
func (b *Builder) Limit(n int) *Builder {
	b.limit = n
	return b
}

// Conditions trả về chuỗi WHERE đã AND và danh sách bound values
func (b *Builder) Conditions() (string, []interface{}) {
	return strings.Join(b.conds, " AND "), b.args
}

// Apply render các điều kiện đã tích lũy lên một *gorm.DB
func (b *Builder) Apply(tx *gorm.DB) *gorm.DB {
	if len(b.conds) > 0 {
		tx = tx.Where(strings.Join(b.conds, " AND "), b.args...)
	}
	if b.orderBy != "" {
		tx = tx.Order(b.orderBy)
	}
	if b.limit > 0 {
		tx = tx.Limit(b.limit)
	}
	return tx
}

func isEmpty(v interface{}) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
