package model

import "time"

const (
	ImageKindBeer = "beer"
	ImageKindLogo = "logo"
)

// StoredImage is a binary attachment kept directly in the database.
// Rows are written once and never modified; re-uploading repoints the
// owner at a fresh row and leaves the old one behind.
type StoredImage struct {
	ID          uint      `gorm:"primaryKey"          json:"id"`
	Kind        string    `json:"kind"`
	RefID       *uint     `gorm:"column:ref_id"       json:"ref_id"`
	ContentType string    `gorm:"column:content_type" json:"content_type"`
	Data        []byte    `gorm:"type:blob"           json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at"   json:"created_at"`
}

func (StoredImage) TableName() string { return "storedimage" }
