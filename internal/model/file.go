package model

import "time"

// Типы записей каталога.
const (
	TypeFolder = "folder"
	TypeFile   = "file"
	TypeImage  = "image"
)

// RootParentID — сентинел «корень»: запись лежит на верхнем уровне.
const RootParentID = "0"

// ValidType сообщает, входит ли t в допустимый набор типов.
func ValidType(t string) bool {
	return t == TypeFolder || t == TypeFile || t == TypeImage
}

// File — запись каталога: папка, файл или изображение.
// UserID и Type неизменяемы после создания; LocalPath пуст для папок.
type File struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	UserID string `gorm:"not null;index:idx_files_owner_parent"`

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Name string `gorm:"not null"`
	Type string `gorm:"not null"`

	// ParentID — uuid папки-родителя либо RootParentID.
	ParentID string `gorm:"not null;default:'0';index:idx_files_owner_parent"`

	IsPublic bool `gorm:"not null;default:false"`

	// LocalPath — непрозрачный локатор содержимого в blob-хранилище.
	LocalPath string

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// IsFolder — true для записей-папок.
func (f *File) IsFolder() bool { return f.Type == TypeFolder }
