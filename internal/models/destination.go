package models

type Destination struct {
	Base          `bson:",inline"`
	Name          string   `json:"name" bson:"name" validate:"required,max=200"`
	State         string   `json:"state" bson:"state" validate:"required,max=100"`
	Details       string   `json:"details" bson:"details" validate:"max=5000"`
	Highlights    []string `json:"highlights" bson:"highlights" validate:"max=50,dive,max=200"`
	ImageURL      string   `json:"imageUrl" bson:"imageUrl" validate:"max=2048"`
	ImagePublicID string   `json:"imagePublicId" bson:"imagePublicId" validate:"max=512"`
}

func (d *Destination) ImageID() string {
	return d.ImagePublicID
}

type DestinationInput struct {
	Name          string        `json:"name"`
	State         string        `json:"state"`
	Details       string        `json:"details"`
	Highlights    []LooseString `json:"highlights"`
	ImageURL      string        `json:"imageUrl"`
	ImagePublicID string        `json:"imagePublicId"`
}

type DestinationPatch struct {
	Name          Optional[string]        `json:"name"`
	State         Optional[string]        `json:"state"`
	Details       Optional[string]        `json:"details"`
	Highlights    Optional[[]LooseString] `json:"highlights"`
	ImageURL      Optional[string]        `json:"imageUrl"`
	ImagePublicID Optional[string]        `json:"imagePublicId"`
}
