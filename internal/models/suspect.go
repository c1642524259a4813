package models

type Suspect struct {
	SuspectID uint    `gorm:"column:suspect_id;primaryKey" json:"suspect_id"`
	Name      string  `gorm:"column:name;not null" json:"name"`
	Age       *int    `gorm:"column:age" json:"age"`
	Gender    *string `gorm:"column:gender" json:"gender"`
	CrimeID   uint    `gorm:"column:crime_id;not null" json:"crime_id"`
}

func (Suspect) TableName() string {
	return "Suspects"
}
