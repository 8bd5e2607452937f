package models

// Caregiving types shared by caregiver profiles and job postings.
const (
	CaregivingTypeBabysitter  = "Babysitter"
	CaregivingTypeElderlyCare = "Elderly Care"
	CaregivingTypePlaymate    = "Playmate"
)

// CaregivingTypes is the closed set of caregiving specialisations.
var CaregivingTypes = []string{
	CaregivingTypeBabysitter,
	CaregivingTypeElderlyCare,
	CaregivingTypePlaymate,
}

// Genders a caregiver may declare. Absent means unspecified (NULL).
var Genders = []string{"M", "F", "O"}

// Caregiver is the caregiving profile of a user, at most one per user.
type Caregiver struct {
	CaregiverUserID uint     `gorm:"primaryKey;autoIncrement:false" json:"caregiver_user_id"`
	Photo           *string  `json:"photo"`
	Gender          *string  `gorm:"type:varchar(1);check:chk_caregivers_gender,gender IN ('M','F','O')" json:"gender"`
	CaregivingType  string   `gorm:"not null;check:chk_caregivers_type,caregiving_type IN ('Babysitter','Elderly Care','Playmate')" json:"caregiving_type"`
	HourlyRate      *float64 `gorm:"check:chk_caregivers_rate,hourly_rate >= 0" json:"hourly_rate"`

	User User `gorm:"foreignKey:CaregiverUserID;references:UserID;constraint:OnUpdate:CASCADE" json:"user,omitempty"`
}
