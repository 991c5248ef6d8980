// Package userrepo reads the user directory and delivery addresses.
package userrepo

type UserDTO struct {
	ID           uint64  `gorm:"primaryKey;autoIncrement"`
	Username     string  `gorm:"size:150;not null;uniqueIndex"`
	FullName     string  `gorm:"size:200;not null"`
	Role         string  `gorm:"size:32;not null"`
	RestaurantID *uint64 `gorm:"index"`
	AddressID    *uint64
}

func (UserDTO) TableName() string {
	return "users"
}

type AddressDTO struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	Street     string `gorm:"size:200;not null"`
	City       string `gorm:"size:100;not null"`
	PostalCode string `gorm:"size:20;not null"`
}

func (AddressDTO) TableName() string {
	return "addresses"
}
