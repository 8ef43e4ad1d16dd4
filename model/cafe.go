package model

// Cafe is the single entity this service manages. Field sizes follow the
// cafes table DDL. Name is intentionally not schema-unique; duplicate
// handling is the store's concern.
type Cafe struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:250;not null" json:"name"`
	MapURL       string `gorm:"size:500;not null" json:"map_url"`
	ImgURL       string `gorm:"size:500;not null" json:"img_url"`
	Location     string `gorm:"size:250;not null" json:"location"`
	HasSockets   bool   `gorm:"not null" json:"has_sockets"`
	HasToilet    bool   `gorm:"not null" json:"has_toilet"`
	HasWifi      bool   `gorm:"not null" json:"has_wifi"`
	CanTakeCalls bool   `gorm:"not null" json:"can_take_calls"`
	Seats        string `gorm:"size:250" json:"seats"`
	CoffeePrice  string `gorm:"size:250" json:"coffee_price"`
}

func (Cafe) TableName() string {
	return "cafes"
}
