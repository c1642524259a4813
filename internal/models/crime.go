package models

// Crime is the aggregate root. Officers, suspects and victims reference it
// by crime_id; nothing cascades back from it.
type Crime struct {
	CrimeID       uint    `gorm:"column:crime_id;primaryKey" json:"crime_id"`
	Description   *string `gorm:"column:description" json:"description"`
	SeverityLevel *string `gorm:"column:severity_level" json:"severity_level"`
	Type          *string `gorm:"column:type" json:"type"`
	Status        string  `gorm:"column:status;not null;default:open" json:"status"`
}

func (Crime) TableName() string {
	return "Crimes"
}
