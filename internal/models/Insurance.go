// internal/models/insurance.go
package models

// Insurance is one policy record for a car. CarID is required on input
// but the column stays nullable so deleting the car detaches the policy
// instead of orphaning it.
type Insurance struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	CarID     *uint   `json:"car_id"`
	Company   string  `gorm:"size:100;not null" json:"company"`
	StartDate *Date   `gorm:"type:date" json:"start_date"`
	EndDate   *Date   `gorm:"type:date" json:"end_date"`
	Premium   *int    `json:"premium"`
	Status    *string `gorm:"size:20" json:"status"`

	Car *Car `gorm:"foreignKey:CarID" json:"car,omitempty"`
}
