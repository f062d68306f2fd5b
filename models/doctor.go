package models

// Doctor is a clinic doctor record, including the weekly availability
// template that drives slot projection and booking validation.
type Doctor struct {
	ID             string         `bson:"id" json:"id"`
	FirstName      string         `bson:"firstName" json:"firstName"`
	LastName       string         `bson:"lastName" json:"lastName"`
	Gender         string         `bson:"gender,omitempty" json:"gender,omitempty"`
	Age            int            `bson:"age,omitempty" json:"age,omitempty"`
	Description    string         `bson:"description,omitempty" json:"description,omitempty"`
	Specialty      string         `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Location       string         `bson:"location,omitempty" json:"location,omitempty"`
	CountryCode    string         `bson:"countryCode,omitempty" json:"countryCode,omitempty"`
	Phone          string         `bson:"phone,omitempty" json:"phone,omitempty"`
	Email          string         `bson:"email" json:"email"`
	MedicalLicense string         `bson:"medicalLicense,omitempty" json:"medicalLicense,omitempty"`
	Availability   WeeklyTemplate `bson:"availability" json:"availability"`
}

// DoctorPatch carries a partial profile update; nil fields are left untouched.
// Email is deliberately absent: changing it is a separate concern.
type DoctorPatch struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Gender         *string `json:"gender"`
	Age            *int    `json:"age"`
	Description    *string `json:"description"`
	Specialty      *string `json:"specialty"`
	Location       *string `json:"location"`
	CountryCode    *string `json:"countryCode"`
	Phone          *string `json:"phone"`
	MedicalLicense *string `json:"medicalLicense"`
}
