package model

type TeamMember struct {
	DTO
	Name          string `gorm:"not null" json:"name"`
	Role          string `gorm:"not null" json:"role"`
	Bio           string `json:"bio"`
	PhotoUrl      string `json:"photoUrl"`
	PhotoPublicId string `json:"-"`
	DisplayOrder  int    `gorm:"default:0" json:"displayOrder"`
}

type CreateTeamMemberInput struct {
	Name         string `json:"name" validate:"required"`
	Role         string `json:"role" validate:"required"`
	Bio          string `json:"bio"`
	DisplayOrder int    `json:"displayOrder" validate:"min=0"`
}

type UpdateTeamMemberInput struct {
	Name         *string `json:"name"`
	Role         *string `json:"role"`
	Bio          *string `json:"bio"`
	DisplayOrder *int    `json:"displayOrder" validate:"omitempty,min=0"`
}
