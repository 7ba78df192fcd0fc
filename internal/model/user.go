package model

import "time"

// User — учётная запись владельца файлов.
// Password хранит bcrypt-хеш и никогда не отдаётся наружу.
type User struct {
	ID       string `gorm:"primaryKey;type:uuid"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
