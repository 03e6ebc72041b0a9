package query

import "strconv"

// ExtractDigits tách số từ free text của slot ("5 sao" -> 5, "3 ngày" -> 3).
// Bỏ mọi ký tự không phải chữ số rồi parse phần còn lại.
// Trả về ok=false khi không có chữ số nào - caller bỏ filter thay vì báo lỗi,
// vì slot value đến từ NLU vốn nhiễu.
func ExtractDigits(s string) (int, bool) {
	digits := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0, false
	}
	return n, true
}
