package validators

import (
	"strings"

	"varsha-travels/internal/models"
)

const destinationRequired = "Name and state are required"

func NewDestination(in *models.DestinationInput) (*models.Destination, error) {
	d := &models.Destination{
		Name:          strings.TrimSpace(in.Name),
		State:         strings.TrimSpace(in.State),
		Details:       strings.TrimSpace(in.Details),
		Highlights:    CleanList(in.Highlights),
		ImageURL:      strings.TrimSpace(in.ImageURL),
		ImagePublicID: strings.TrimSpace(in.ImagePublicID),
	}
	if err := check(d, destinationRequired); err != nil {
		return nil, err
	}
	return d, nil
}

// ApplyDestinationPatch merges p into d. Name and state only change to a
// non-blank value; image fields only change to a non-empty value.
func ApplyDestinationPatch(d *models.Destination, p *models.DestinationPatch) error {
	next := *d
	setIfNotBlank(&next.Name, p.Name)
	setIfNotBlank(&next.State, p.State)
	if p.Details.Present() {
		next.Details = strings.TrimSpace(p.Details.Value)
	}
	if p.Highlights.Present() {
		next.Highlights = CleanList(p.Highlights.Value)
	}
	setIfNotBlank(&next.ImageURL, p.ImageURL)
	setIfNotBlank(&next.ImagePublicID, p.ImagePublicID)

	if err := check(&next, destinationRequired); err != nil {
		return err
	}
	*d = next
	return nil
}

func setIfNotBlank(dst *string, o models.Optional[string]) {
	if !o.Present() {
		return
	}
	if v := strings.TrimSpace(o.Value); v != "" {
		*dst = v
	}
}

func setTrimmed(dst *string, o models.Optional[string]) {
	if o.Present() {
		*dst = strings.TrimSpace(o.Value)
	}
}
