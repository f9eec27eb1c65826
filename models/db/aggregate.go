package dbmodels

// CountByKey строка группировки для отчётов
type CountByKey struct {
	Key   string `gorm:"column:group_key"`
	Count int64  `gorm:"column:cnt"`
}

type VacancyPopularity struct {
	VacancyID      string `gorm:"column:vacancy_id"`
	Title          string `gorm:"column:title"`
	Specialization string `gorm:"column:specialization"`
	Count          int64  `gorm:"column:cnt"`
}
