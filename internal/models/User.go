package models

// User is the login table. Passwords are stored exactly as given; this is
// an internal record-keeping surface and hashing is out of scope here.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"password"`

	CarsOwned []Car `gorm:"foreignKey:UserID" json:"cars_owned,omitempty"`
}
