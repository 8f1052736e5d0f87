package models

import "time"

// Building is a non-residential property identified by its registration number.
type Building struct {
	RegistrationNumber int       `gorm:"column:registration_number;primaryKey" json:"registration_number"`
	Address            string    `gorm:"column:address;size:255;not null" json:"address"`
	DistrictID         int       `gorm:"column:district_id;not null;index" json:"district_id"`
	Area               float64   `gorm:"column:area;type:double precision" json:"area"`
	FloorCount         int       `gorm:"column:floor_count" json:"floor_count"`
	BuildDate          time.Time `gorm:"column:build_date;type:date" json:"build_date"`
}

func (Building) TableName() string {
	return "buildings"
}
