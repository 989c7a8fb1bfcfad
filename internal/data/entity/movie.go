package entity

type Movie struct {
	ID       int64   `db:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Title    string  `db:"title" gorm:"column:title"`
	Director string  `db:"director" gorm:"column:director"`
	Year     int     `db:"year" gorm:"column:year"`
	Genre    *string `db:"genre" gorm:"column:genre"`
	Rating   float64 `db:"rating" gorm:"column:rating"`
}

func (Movie) TableName() string {
	return "movies"
}
