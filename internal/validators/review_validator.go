package validators

import (
	"strings"

	"varsha-travels/internal/models"
)

const reviewRequired = "Name and content are required"

func NewReview(in *models.ReviewInput) (*models.Review, error) {
	name := strings.TrimSpace(in.Name)
	content := strings.TrimSpace(in.Content)
	if name == "" || content == "" {
		return nil, NewValidationError("name", reviewRequired)
	}

	r := &models.Review{
		Name:      name,
		Trip:      strings.TrimSpace(in.Trip),
		Rating:    CoerceRating(in.Rating),
		Content:   content,
		MediaURL:  strings.TrimSpace(in.MediaURL),
		MediaType: models.MediaType(strings.TrimSpace(in.MediaType)),
		Date:      strings.TrimSpace(in.Date),
	}
	if err := check(r, reviewRequired); err != nil {
		return nil, err
	}
	return r, nil
}
