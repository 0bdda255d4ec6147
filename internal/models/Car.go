// internal/models/car.go
package models

// Car is a fleet vehicle. A car may be assigned to at most one Employee
// and owned by at most one User; both links are optional and independent.
type Car struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	PlateNumber  string  `gorm:"size:20;uniqueIndex;not null" json:"plate_number"`
	Model        string  `gorm:"size:100;not null" json:"model"`
	AssignedID   *uint   `json:"assigned_id"`
	InsuranceDue *Date   `gorm:"type:date" json:"insurance_due"`
	Notes        *string `json:"notes"`
	OwnerName    *string `gorm:"size:100" json:"owner_name"`
	UserID       *uint   `json:"user_id"`

	// Associations
	Assigned   *Employee   `gorm:"foreignKey:AssignedID;constraint:OnDelete:SET NULL;" json:"assigned,omitempty"`
	Owner      *User       `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL;" json:"owner,omitempty"`
	Insurances []Insurance `gorm:"foreignKey:CarID;constraint:OnDelete:SET NULL;" json:"insurances,omitempty"`
}
