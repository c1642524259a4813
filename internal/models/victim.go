package models

type Victim struct {
	VictimID uint    `gorm:"column:victim_id;primaryKey" json:"victim_id"`
	Name     string  `gorm:"column:name;not null" json:"name"`
	Age      *int    `gorm:"column:age" json:"age"`
	Gender   *string `gorm:"column:gender" json:"gender"`
	CrimeID  uint    `gorm:"column:crime_id;not null" json:"crime_id"`
}

func (Victim) TableName() string {
	return "Victims"
}
