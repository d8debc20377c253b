package models

import "time"

// Subscription is the explicit join row mirroring the reader's subscription
// sets. Exactly one of PublisherID/JournalistID is set per row; uniqueness is
// enforced per (reader, publisher) and per (reader, journalist).
type Subscription struct {
	ID           uint       `json:"id" gorm:"primarykey"`
	ReaderID     uint       `json:"reader_id" gorm:"not null;uniqueIndex:idx_reader_publisher;uniqueIndex:idx_reader_journalist"`
	Reader       User       `json:"-" gorm:"foreignKey:ReaderID;constraint:OnDelete:CASCADE"`
	PublisherID  *uint      `json:"publisher_id" gorm:"uniqueIndex:idx_reader_publisher"`
	Publisher    *Publisher `json:"publisher,omitempty" gorm:"foreignKey:PublisherID;constraint:OnDelete:CASCADE"`
	JournalistID *uint      `json:"journalist_id" gorm:"uniqueIndex:idx_reader_journalist"`
	Journalist   *User      `json:"journalist,omitempty" gorm:"foreignKey:JournalistID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time  `json:"created_at"`
}
