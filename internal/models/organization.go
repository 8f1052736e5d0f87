package models

type Organization struct {
	OrganizationID   int    `gorm:"column:organization_id;primaryKey" json:"organization_id"`
	OrganizationName string `gorm:"column:organization_name;size:255;not null" json:"organization_name"`
}

func (Organization) TableName() string {
	return "organizations"
}
