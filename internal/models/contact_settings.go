package models

// ContactSettings is a singleton document holding the business details
// shown on the public site.
type ContactSettings struct {
	Base         `bson:",inline"`
	BusinessName string   `json:"businessName" bson:"businessName" validate:"max=500"`
	AddressLine1 string   `json:"addressLine1" bson:"addressLine1" validate:"max=500"`
	AddressLine2 string   `json:"addressLine2" bson:"addressLine2" validate:"max=500"`
	AddressLine3 string   `json:"addressLine3" bson:"addressLine3" validate:"max=500"`
	Phones       []string `json:"phones" bson:"phones" validate:"max=20,dive,max=254"`
	Emails       []string `json:"emails" bson:"emails" validate:"max=20,dive,max=254"`

	BusinessHoursWeekdays string `json:"businessHoursWeekdays" bson:"businessHoursWeekdays" validate:"max=500"`
	BusinessHoursSaturday string `json:"businessHoursSaturday" bson:"businessHoursSaturday" validate:"max=500"`
	BusinessHoursSunday   string `json:"businessHoursSunday" bson:"businessHoursSunday" validate:"max=500"`

	BankName          string `json:"bankName" bson:"bankName" validate:"max=500"`
	AccountNumber     string `json:"accountNumber" bson:"accountNumber" validate:"max=500"`
	IFSC              string `json:"ifsc" bson:"ifsc" validate:"max=500"`
	Branch            string `json:"branch" bson:"branch" validate:"max=500"`
	AccountHolderName string `json:"accountHolderName" bson:"accountHolderName" validate:"max=500"`
	UPIID             string `json:"upiId" bson:"upiId" validate:"max=500"`

	SocialFacebook  string `json:"socialFacebook" bson:"socialFacebook" validate:"max=500"`
	SocialInstagram string `json:"socialInstagram" bson:"socialInstagram" validate:"max=500"`
	SocialTwitter   string `json:"socialTwitter" bson:"socialTwitter" validate:"max=500"`
	SocialWhatsapp  string `json:"socialWhatsapp" bson:"socialWhatsapp" validate:"max=500"`

	QRImageURL      string `json:"qrImageUrl" bson:"qrImageUrl" validate:"max=2048"`
	QRImagePublicID string `json:"qrImagePublicId" bson:"qrImagePublicId" validate:"max=500"`
}

func (s *ContactSettings) ImageID() string {
	return s.QRImagePublicID
}

// DefaultContactSettings is stored the first time settings are read.
func DefaultContactSettings() *ContactSettings {
	return &ContactSettings{
		BusinessName:          "Varsha Travels",
		AddressLine1:          "57, 5th Cross Street",
		AddressLine2:          "East Vaithiyanatha Puram, Thathaneri P.O",
		AddressLine3:          "Madurai - 625018, India",
		Phones:                []string{"8778265650", "9435360401"},
		Emails:                []string{"varshatravels06@gmail.com"},
		BusinessHoursWeekdays: "9:00 AM - 6:00 PM",
		BusinessHoursSaturday: "10:00 AM - 4:00 PM",
		BusinessHoursSunday:   "By Appointment",
		BankName:              "State Bank of India",
		AccountNumber:         "30231884313",
		IFSC:                  "SBIN0000253",
		Branch:                "Tallakulam",
		AccountHolderName:     "S Muthukumar",
		UPIID:                 "varshamd12@okaxis",
	}
}

type ContactSettingsPatch struct {
	BusinessName Optional[string]        `json:"businessName"`
	AddressLine1 Optional[string]        `json:"addressLine1"`
	AddressLine2 Optional[string]        `json:"addressLine2"`
	AddressLine3 Optional[string]        `json:"addressLine3"`
	Phones       Optional[[]LooseString] `json:"phones"`
	Emails       Optional[[]LooseString] `json:"emails"`

	BusinessHoursWeekdays Optional[string] `json:"businessHoursWeekdays"`
	BusinessHoursSaturday Optional[string] `json:"businessHoursSaturday"`
	BusinessHoursSunday   Optional[string] `json:"businessHoursSunday"`

	BankName          Optional[string] `json:"bankName"`
	AccountNumber     Optional[string] `json:"accountNumber"`
	IFSC              Optional[string] `json:"ifsc"`
	Branch            Optional[string] `json:"branch"`
	AccountHolderName Optional[string] `json:"accountHolderName"`
	UPIID             Optional[string] `json:"upiId"`

	SocialFacebook  Optional[string] `json:"socialFacebook"`
	SocialInstagram Optional[string] `json:"socialInstagram"`
	SocialTwitter   Optional[string] `json:"socialTwitter"`
	SocialWhatsapp  Optional[string] `json:"socialWhatsapp"`

	QRImageURL      Optional[string] `json:"qrImageUrl"`
	QRImagePublicID Optional[string] `json:"qrImagePublicId"`
}
