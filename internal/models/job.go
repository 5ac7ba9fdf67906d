package models

import "time"

// JobTypes is the fixed set of accepted employment types.
var JobTypes = []string{"Full Time", "Part Time", "Internship", "Contract", "Remote"}

// ValidJobType reports whether t is a member of JobTypes.
func ValidJobType(t string) bool {
	for _, v := range JobTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Job represents a published job posting. JobID is the caller-chosen
// external key and is immutable after creation.
type Job struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	JobID       string    `gorm:"size:64;uniqueIndex;not null" json:"jobId"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Location    string    `gorm:"size:255;not null" json:"location"`
	Type        string    `gorm:"size:32;not null" json:"type"`
	Description string    `gorm:"type:text;not null" json:"description"`
	DatePosted  time.Time `gorm:"index;not null" json:"datePosted"`
	Skills      []string  `gorm:"serializer:json" json:"skills"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
