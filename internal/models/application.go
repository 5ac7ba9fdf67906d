package models

import "time"

// Education is one schooling entry on an application.
type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	Score          string `json:"score"`
	CompletionYear string `json:"completionYear"`
}

// Experience is one employment entry on an application.
type Experience struct {
	JobTitle     string `json:"jobTitle"`
	EmployerName string `json:"employerName"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	CurrentJob   bool   `json:"currentJob"`
}

// Project is one personal-project entry on an application.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Application is a submitted job application. The (email, job_id) pair is
// unique at the storage layer; a second submission for the same job by the
// same address fails instead of racing past the client-side precheck.
type Application struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	Email     string `gorm:"size:255;not null;uniqueIndex:idx_applications_email_job" json:"email"`
	JobID     string `gorm:"size:64;not null;uniqueIndex:idx_applications_email_job" json:"jobId"`
	FirstName string `gorm:"size:128" json:"firstName"`
	LastName  string `gorm:"size:128" json:"lastName"`
	FullName  string `gorm:"size:255" json:"fullName"`
	Phone     string `gorm:"size:32" json:"phone"`

	State        string `gorm:"size:128" json:"state"`
	City         string `gorm:"size:128" json:"city"`
	AddressLine1 string `gorm:"size:255" json:"addressLine1"`

	// questionnaire answers arrive as "yes"/"no" and may be absent
	IsOver18            string `gorm:"size:8" json:"isOver18"`
	IsAuthorizedToWork  string `gorm:"size:8" json:"isAuthorizedToWork"`
	RequiresSponsorship string `gorm:"size:8" json:"requiresSponsorship"`

	Links      []string     `gorm:"serializer:json" json:"links"`
	Education  []Education  `gorm:"serializer:json" json:"education"`
	Experience []Experience `gorm:"serializer:json" json:"experience"`
	Projects   []Project    `gorm:"serializer:json" json:"projects"`

	ResumePublicId       string `gorm:"size:255" json:"resumePublicId"`
	ResumeSecureUrl      string `gorm:"size:512" json:"resumeSecureUrl"`
	CoverLetterPublicId  string `gorm:"size:255" json:"coverLetterPublicId"`
	CoverLetterSecureUrl string `gorm:"size:512" json:"coverLetterSecureUrl"`

	Status    string    `gorm:"size:32;default:new" json:"status"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}
