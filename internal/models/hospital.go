package models

// Hospital represents the hospitals table: a single facility's bed, ICU,
// ventilator and oxygen availability. JSON field names follow the public API
// contract consumed by the search frontend.
type Hospital struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	HospitalName    string     `gorm:"size:255;not null" json:"hospitalName"`
	TotalBeds       int        `gorm:"default:0" json:"totalBeds"`
	AvailableBeds   int        `gorm:"default:0" json:"availableBeds"`
	OxygenAvailable bool       `gorm:"default:false" json:"oxygenAvailable"`
	Address         string     `gorm:"size:255" json:"address"`
	ContactNumber   string     `gorm:"size:20" json:"contactNumber"`
	ICUBeds         int        `gorm:"column:icu_beds;default:0" json:"icuBeds"`
	Ventilators     int        `gorm:"default:0" json:"ventilators"`
	Locations       []Location `gorm:"foreignKey:HospitalID;constraint:OnDelete:CASCADE" json:"locations"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}

// Location represents the locations table. A location is exclusively owned by
// its hospital and is removed together with it.
type Location struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	HospitalID uint   `gorm:"not null;index" json:"-"`
	Address    string `gorm:"size:255" json:"address"`
	City       string `gorm:"size:100;index" json:"city"`
	State      string `gorm:"size:100" json:"state"`
	ZipCode    string `gorm:"size:10" json:"zipCode"`
}

// TableName specifies the table name for Location model
func (Location) TableName() string {
	return "locations"
}
