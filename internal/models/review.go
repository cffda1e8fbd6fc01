package models

type MediaType string

const (
	MediaTypeNone  MediaType = ""
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

const (
	MinRating     = 1
	MaxRating     = 5
	DefaultRating = 5
)

type Review struct {
	Base      `bson:",inline"`
	Name      string    `json:"name" bson:"name" validate:"required,max=200"`
	Trip      string    `json:"trip" bson:"trip" validate:"max=200"`
	Rating    int       `json:"rating" bson:"rating" validate:"min=1,max=5"`
	Content   string    `json:"content" bson:"content" validate:"required,max=5000"`
	MediaURL  string    `json:"mediaUrl" bson:"mediaUrl" validate:"max=2048"`
	MediaType MediaType `json:"mediaType" bson:"mediaType" validate:"omitempty,oneof=image video"`
	// Date is a display label such as "Jan 2024".
	Date string `json:"date" bson:"date" validate:"max=100"`
}

// ReviewInput keeps Rating untyped: clients send numbers, numeric strings,
// garbage or nothing, and all of those have defined outcomes.
type ReviewInput struct {
	Name      string      `json:"name"`
	Trip      string      `json:"trip"`
	Rating    interface{} `json:"rating"`
	Content   string      `json:"content"`
	MediaURL  string      `json:"mediaUrl"`
	MediaType string      `json:"mediaType"`
	Date      string      `json:"date"`
}
