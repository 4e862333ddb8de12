package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SocialLinks is the optional social sub-record. Fields appear in responses
// only when they were submitted.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Experience is one work-history entry. IDs are unique within the owning
// profile only.
type Experience struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location,omitempty"`
	From        string    `json:"from"`
	To          string    `json:"to,omitempty"`
	Current     bool      `json:"current"`
	Description string    `json:"description,omitempty"`
}

type Education struct {
	ID          uuid.UUID `json:"id"`
	School      string    `json:"school"`
	Degree      string    `json:"degree"`
	Field       string    `json:"field"`
	From        string    `json:"from"`
	To          string    `json:"to,omitempty"`
	Current     bool      `json:"current"`
	Description string    `json:"description,omitempty"`
}

// Profile is the document linked 1:1 to a User. Skills, social links and the
// experience/education sequences live in JSON columns so the whole document
// is read and written as a unit.
type Profile struct {
	ID         uuid.UUID                       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID                       `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User       User                            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	Company    string                          `gorm:"size:255" json:"company,omitempty"`
	Website    string                          `gorm:"size:255" json:"website,omitempty"`
	Location   string                          `gorm:"size:255" json:"location,omitempty"`
	Bio        string                          `gorm:"type:text" json:"bio,omitempty"`
	Status     string                          `gorm:"size:100;not null" json:"status"`
	Skills     datatypes.JSONSlice[string]     `json:"skills"`
	Social     datatypes.JSONType[SocialLinks] `json:"social"`
	Experience datatypes.JSONSlice[Experience] `json:"experience"`
	Education  datatypes.JSONSlice[Education]  `json:"education"`
	CreatedAt  time.Time                       `json:"created_at"`
	UpdatedAt  time.Time                       `json:"updated_at"`
}

// AddExperience inserts the entry at the head, most recent first.
func (p *Profile) AddExperience(e Experience) {
	p.Experience = append(datatypes.JSONSlice[Experience]{e}, p.Experience...)
}

// RemoveExperience deletes the entry with the given id and reports whether it
// was found. Unknown ids leave the sequence untouched.
func (p *Profile) RemoveExperience(entryID string) bool {
	for i, e := range p.Experience {
		if e.ID.String() == entryID {
			p.Experience = append(p.Experience[:i], p.Experience[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Profile) AddEducation(e Education) {
	p.Education = append(datatypes.JSONSlice[Education]{e}, p.Education...)
}

func (p *Profile) RemoveEducation(entryID string) bool {
	for i, e := range p.Education {
		if e.ID.String() == entryID {
			p.Education = append(p.Education[:i], p.Education[i+1:]...)
			return true
		}
	}
	return false
}
