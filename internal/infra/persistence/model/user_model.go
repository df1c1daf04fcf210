package model

import "time"

// UserModel mirrors the 'users' table. The primary key is the provider-scoped
// stable identifier, so no surrogate key is generated.
type UserModel struct {
	ID       string  `gorm:"type:varchar(64);primary_key"`
	Token    string  `gorm:"type:varchar(128);not null"`
	Name     string  `gorm:"type:varchar(100);not null"`
	Avatar   string  `gorm:"type:text;not null"`
	Contact  string  `gorm:"type:varchar(255);not null"`
	WalletID *string `gorm:"type:varchar(64)"`
	Income   int64   `gorm:"not null;default:0"`

	// Booking and listing references are stored as JSON arrays; this service
	// only carries them through, it never queries into them.
	Bookings []string `gorm:"serializer:json;type:jsonb;not null"`
	Listings []string `gorm:"serializer:json;type:jsonb;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
