package models

import "time"

// Job is a care position posted by a member.
type Job struct {
	JobID                  uint       `gorm:"primaryKey" json:"job_id"`
	MemberUserID           uint       `gorm:"not null;index" json:"member_user_id"`
	RequiredCaregivingType string     `gorm:"not null;check:chk_jobs_required_type,required_caregiving_type IN ('Babysitter','Elderly Care','Playmate')" json:"required_caregiving_type"`
	OtherRequirements      string     `json:"other_requirements"`
	DatePosted             *time.Time `gorm:"type:date" json:"date_posted"`

	Member Member `gorm:"foreignKey:MemberUserID;references:MemberUserID;constraint:OnUpdate:CASCADE" json:"member,omitempty"`
}

// JobApplication records a caregiver applying to a job. The composite
// primary key allows at most one application per (caregiver, job) pair.
type JobApplication struct {
	CaregiverUserID uint       `gorm:"primaryKey;autoIncrement:false" json:"caregiver_user_id"`
	JobID           uint       `gorm:"primaryKey;autoIncrement:false" json:"job_id"`
	DateApplied     *time.Time `gorm:"type:date" json:"date_applied"`

	Caregiver Caregiver `gorm:"foreignKey:CaregiverUserID;references:CaregiverUserID;constraint:OnUpdate:CASCADE" json:"caregiver,omitempty"`
	Job       Job       `gorm:"foreignKey:JobID;references:JobID;constraint:OnUpdate:CASCADE" json:"job,omitempty"`
}
