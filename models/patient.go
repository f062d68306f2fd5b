package models

// Patient is a clinic patient record. Appointments reference patients by ID.
type Patient struct {
	ID          string   `bson:"id" json:"id"`
	FirstName   string   `bson:"firstName" json:"firstName"`
	LastName    string   `bson:"lastName" json:"lastName"`
	Gender      string   `bson:"gender,omitempty" json:"gender,omitempty"`
	Age         int      `bson:"age,omitempty" json:"age,omitempty"`
	Email       string   `bson:"email" json:"email"`
	Phone       string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Location    string   `bson:"location,omitempty" json:"location,omitempty"`
	BloodType   string   `bson:"bloodType,omitempty" json:"bloodType,omitempty"`
	Allergies   []string `bson:"allergies,omitempty" json:"allergies,omitempty"`
	Conditions  []string `bson:"conditions,omitempty" json:"conditions,omitempty"`
	Medications []string `bson:"medications,omitempty" json:"medications,omitempty"`
}

// PatientPatch carries a partial profile update; nil fields are left untouched.
type PatientPatch struct {
	FirstName   *string   `json:"firstName"`
	LastName    *string   `json:"lastName"`
	Gender      *string   `json:"gender"`
	Age         *int      `json:"age"`
	Phone       *string   `json:"phone"`
	Location    *string   `json:"location"`
	BloodType   *string   `json:"bloodType"`
	Allergies   *[]string `json:"allergies"`
	Conditions  *[]string `json:"conditions"`
	Medications *[]string `json:"medications"`
}
