package models

import "time"

// Gender values accepted for a patient profile.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Patient account. The password hash is never serialized.
type User struct {
	ID              int64     `json:"id,string"`
	Email           string    `json:"email" example:"ana@example.com"`
	PasswordHash    string    `json:"-"`
	Fullname        string    `json:"fullname" example:"Ana Torres"`
	Age             int       `json:"age" example:"30"`
	Gender          string    `json:"gender" example:"female"`
	Allergies       []string  `json:"allergies"`
	Medications     []string  `json:"medications"`
	MedicalHistory  string    `json:"medical_history"`
	SurgicalHistory []string  `json:"surgical_history"`
	FamilyHistory   string    `json:"family_history"`
	LastCheckup     time.Time `json:"last_checkup"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Partial profile update. Nil fields are left untouched.
type UserUpdate struct {
	Fullname        *string    `json:"fullname"`
	Age             *int       `json:"age"`
	Gender          *string    `json:"gender"`
	Allergies       *[]string  `json:"allergies"`
	Medications     *[]string  `json:"medications"`
	MedicalHistory  *string    `json:"medical_history"`
	SurgicalHistory *[]string  `json:"surgical_history"`
	FamilyHistory   *string    `json:"family_history"`
	LastCheckup     *time.Time `json:"last_checkup"`
}

// Empty reports whether the update would change nothing.
func (u UserUpdate) Empty() bool {
	return u.Fullname == nil && u.Age == nil && u.Gender == nil &&
		u.Allergies == nil && u.Medications == nil && u.MedicalHistory == nil &&
		u.SurgicalHistory == nil && u.FamilyHistory == nil && u.LastCheckup == nil
}
