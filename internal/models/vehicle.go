package models

// Vehicle is a gallery entry; it always carries an image.
type Vehicle struct {
	Base          `bson:",inline"`
	Name          string `json:"name" bson:"name" validate:"required,max=200"`
	ImageURL      string `json:"imageUrl" bson:"imageUrl" validate:"required,max=2048"`
	ImagePublicID string `json:"imagePublicId" bson:"imagePublicId" validate:"required,max=512"`
}

func (v *Vehicle) ImageID() string {
	return v.ImagePublicID
}

type VehicleInput struct {
	Name          string `json:"name"`
	ImageURL      string `json:"imageUrl"`
	ImagePublicID string `json:"imagePublicId"`
}

type VehiclePatch struct {
	Name          Optional[string] `json:"name"`
	ImageURL      Optional[string] `json:"imageUrl"`
	ImagePublicID Optional[string] `json:"imagePublicId"`
}
