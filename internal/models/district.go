package models

type District struct {
	DistrictID   int    `gorm:"column:district_id;primaryKey" json:"district_id"`
	DistrictName string `gorm:"column:district_name;size:100;not null" json:"district_name"`
}

func (District) TableName() string {
	return "districts"
}
