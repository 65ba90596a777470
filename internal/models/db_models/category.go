package db_models

// Category is a read-only question grouping, e.g. "Science" or "History".
type Category struct {
	ID   int    `gorm:"primaryKey"`
	Type string `gorm:"not null"`
}

func (Category) TableName() string {
	return "categories"
}
