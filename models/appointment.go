package models

import "time"

// Appointment status values.
const (
	AppointmentUpcoming = "upcoming"
	AppointmentPast     = "past"
)

// Appointment links a patient to a doctor for a fixed half-hour visit.
// StartTime implies an end of StartTime+30m; EndTime is an advisory field
// kept only when the caller supplied one explicitly.
type Appointment struct {
	ID            string    `bson:"id" json:"id"`
	DoctorID      string    `bson:"doctorId" json:"doctorId"`
	PatientID     string    `bson:"patientId" json:"patientId"`
	Date          string    `bson:"date" json:"date"`           // "2006-01-02"
	StartTime     string    `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime       string    `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Reason        string    `bson:"reason,omitempty" json:"reason,omitempty"`
	Location      string    `bson:"location,omitempty" json:"location,omitempty"`
	Diagnosis     string    `bson:"diagnosis,omitempty" json:"diagnosis,omitempty"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Plan          string    `bson:"plan,omitempty" json:"plan,omitempty"`
	Prescription  string    `bson:"prescription,omitempty" json:"prescription,omitempty"`
	ReportPending bool      `bson:"reportPending" json:"reportPending"`
	IsVaccine     bool      `bson:"isVaccine" json:"isVaccine"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// AppointmentPatch carries a partial appointment update; nil fields are left
// untouched. Changing Date or StartTime triggers booking re-validation.
type AppointmentPatch struct {
	Date          *string `json:"date"`
	StartTime     *string `json:"startTime"`
	EndTime       *string `json:"endTime"`
	Reason        *string `json:"reason"`
	Location      *string `json:"location"`
	Diagnosis     *string `json:"diagnosis"`
	Notes         *string `json:"notes"`
	Plan          *string `json:"plan"`
	Prescription  *string `json:"prescription"`
	ReportPending *bool   `json:"reportPending"`
	IsVaccine     *bool   `json:"isVaccine"`
}
