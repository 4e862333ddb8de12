package dto

// UpsertProfileRequest is the sparse patch for POST /api/profile. Optional
// fields are pointers so an absent field is distinguishable and never clears
// a stored value.
type UpsertProfileRequest struct {
	Status string `json:"status" validate:"required"`
	Skills string `json:"skills" validate:"required"`

	Company  *string `json:"company"`
	Website  *string `json:"website"`
	Location *string `json:"location"`
	Bio      *string `json:"bio"`

	Youtube   *string `json:"youtube"`
	Twitter   *string `json:"twitter"`
	Facebook  *string `json:"facebook"`
	Linkedin  *string `json:"linkedin"`
	Instagram *string `json:"instagram"`
}

type ExperienceRequest struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location"`
	From        string `json:"from" validate:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type EducationRequest struct {
	School      string `json:"school" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	Field       string `json:"field" validate:"required"`
	From        string `json:"from" validate:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}
