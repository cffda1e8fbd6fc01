package validators

import (
	"strings"

	"varsha-travels/internal/models"
)

const vehicleRequired = "Name, imageUrl and imagePublicId are required"

func NewVehicle(in *models.VehicleInput) (*models.Vehicle, error) {
	v := &models.Vehicle{
		Name:          strings.TrimSpace(in.Name),
		ImageURL:      strings.TrimSpace(in.ImageURL),
		ImagePublicID: strings.TrimSpace(in.ImagePublicID),
	}
	if err := check(v, vehicleRequired); err != nil {
		return nil, err
	}
	return v, nil
}

func ApplyVehiclePatch(v *models.Vehicle, p *models.VehiclePatch) error {
	next := *v
	setIfNotBlank(&next.Name, p.Name)
	setIfNotBlank(&next.ImageURL, p.ImageURL)
	setIfNotBlank(&next.ImagePublicID, p.ImagePublicID)

	if err := check(&next, vehicleRequired); err != nil {
		return err
	}
	*v = next
	return nil
}
