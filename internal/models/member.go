package models

// Member is the care-seeking profile of a user, at most one per user.
type Member struct {
	MemberUserID         uint   `gorm:"primaryKey;autoIncrement:false" json:"member_user_id"`
	HouseRules           string `json:"house_rules"`
	DependentDescription string `json:"dependent_description"`

	User User `gorm:"foreignKey:MemberUserID;references:UserID;constraint:OnUpdate:CASCADE" json:"user,omitempty"`
}

// Address is the home address of a member, at most one per member.
type Address struct {
	MemberUserID uint   `gorm:"primaryKey;autoIncrement:false" json:"member_user_id"`
	HouseNumber  string `json:"house_number"`
	Street       string `json:"street"`
	Town         string `json:"town"`

	Member Member `gorm:"foreignKey:MemberUserID;references:MemberUserID;constraint:OnUpdate:CASCADE" json:"member,omitempty"`
}
