// internal/models/employee.go
package models

type Employee struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"not null" json:"name"`
	Role  string  `gorm:"not null" json:"role"`
	Phone *string `json:"phone"`

	Cars []Car `gorm:"foreignKey:AssignedID" json:"cars,omitempty"`
}
