package model

type Publication struct {
	DTO
	Title       string             `gorm:"not null" json:"title"`
	Description string             `json:"description"`
	Year        int                `json:"year"`
	Photos      []PublicationPhoto `gorm:"foreignKey:PublicationId" json:"photos,omitempty"`
}

type PublicationPhoto struct {
	DTO
	PublicationId uint   `gorm:"index" json:"-"`
	Url           string `gorm:"not null" json:"url"`
	PublicId      string `json:"publicId"`
}

type CreatePublicationInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Year        int    `json:"year" validate:"omitempty,min=1800"`
}

type UpdatePublicationInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Year        *int    `json:"year" validate:"omitempty,min=1800"`
}
