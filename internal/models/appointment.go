package models

import "time"

// Appointment statuses.
const (
	AppointmentStatusPending  = "pending"
	AppointmentStatusAccepted = "accepted"
	AppointmentStatusDeclined = "declined"
)

// AppointmentStatuses is the closed set of appointment states.
var AppointmentStatuses = []string{
	AppointmentStatusPending,
	AppointmentStatusAccepted,
	AppointmentStatusDeclined,
}

// Appointment is a scheduled engagement between a caregiver and a member.
// AppointmentTime holds a validated HH:MM clock literal.
type Appointment struct {
	AppointmentID   uint       `gorm:"primaryKey" json:"appointment_id"`
	CaregiverUserID uint       `gorm:"not null;index" json:"caregiver_user_id"`
	MemberUserID    uint       `gorm:"not null;index" json:"member_user_id"`
	AppointmentDate *time.Time `gorm:"type:date" json:"appointment_date"`
	AppointmentTime *string    `gorm:"type:varchar(5)" json:"appointment_time"`
	WorkHours       *float64   `gorm:"check:chk_appointments_hours,work_hours > 0" json:"work_hours"`
	Status          string     `gorm:"not null;default:pending;check:chk_appointments_status,status IN ('pending','accepted','declined')" json:"status"`

	Caregiver Caregiver `gorm:"foreignKey:CaregiverUserID;references:CaregiverUserID;constraint:OnUpdate:CASCADE" json:"caregiver,omitempty"`
	Member    Member    `gorm:"foreignKey:MemberUserID;references:MemberUserID;constraint:OnUpdate:CASCADE" json:"member,omitempty"`
}
