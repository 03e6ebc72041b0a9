package models

// AllModels trả về danh sách tất cả models cho auto migration
func AllModels() []interface{} {
	return []interface{}{
		&Destination{},
		&Hotel{},
		&Restaurant{},
		&Activity{},
		&Tour{},
		&Transportation{},
		&Weather{},
		&Review{},
		&Event{},
	}
}
