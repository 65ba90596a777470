package db_models

type Question struct {
	ID         int    `gorm:"primaryKey"`
	Question   string `gorm:"not null"`
	Answer     string `gorm:"not null"`
	Category   int    `gorm:"index"`
	Difficulty int
}

func (Question) TableName() string {
	return "questions"
}
