package models

type Officer struct {
	OfficerID uint   `gorm:"column:officer_id;primaryKey" json:"officer_id"`
	Name      string `gorm:"column:name;not null" json:"name"`
	CrimeID   uint   `gorm:"column:crime_id;not null" json:"crime_id"`
}

func (Officer) TableName() string {
	return "Officers"
}
