package console

import (
	"strings"

	"varsha-travels/internal/models"
)

// SettingsForm is the editable copy of the contact settings. Phones and
// Emails always hold at least one row so the form has an input to type in.
type SettingsForm struct {
	Settings models.ContactSettings
	Phones   []string
	Emails   []string
}

func NewSettingsForm(s models.ContactSettings) *SettingsForm {
	return &SettingsForm{
		Settings: s,
		Phones:   atLeastOneRow(s.Phones),
		Emails:   atLeastOneRow(s.Emails),
	}
}

func atLeastOneRow(values []string) []string {
	if len(values) == 0 {
		return []string{""}
	}
	return append([]string(nil), values...)
}

// Patch builds the update body. Blank rows are sent as-is and dropped by
// the server. qr is the result of uploading a new QR image, or nil to keep
// the current one.
func (f *SettingsForm) Patch(qr *QRImage) models.ContactSettingsPatch {
	s := f.Settings
	patch := models.ContactSettingsPatch{
		BusinessName:          models.Some(s.BusinessName),
		AddressLine1:          models.Some(s.AddressLine1),
		AddressLine2:          models.Some(s.AddressLine2),
		AddressLine3:          models.Some(s.AddressLine3),
		Phones:                models.Some(looseList(f.Phones)),
		Emails:                models.Some(looseList(f.Emails)),
		BusinessHoursWeekdays: models.Some(s.BusinessHoursWeekdays),
		BusinessHoursSaturday: models.Some(s.BusinessHoursSaturday),
		BusinessHoursSunday:   models.Some(s.BusinessHoursSunday),
		BankName:              models.Some(s.BankName),
		AccountNumber:         models.Some(s.AccountNumber),
		IFSC:                  models.Some(s.IFSC),
		Branch:                models.Some(s.Branch),
		AccountHolderName:     models.Some(s.AccountHolderName),
		UPIID:                 models.Some(s.UPIID),
		SocialFacebook:        models.Some(s.SocialFacebook),
		SocialInstagram:       models.Some(s.SocialInstagram),
		SocialTwitter:         models.Some(s.SocialTwitter),
		SocialWhatsapp:        models.Some(s.SocialWhatsapp),
		QRImageURL:            models.Some(s.QRImageURL),
		QRImagePublicID:       models.Some(s.QRImagePublicID),
	}
	if qr != nil {
		patch.QRImageURL = models.Some(qr.URL)
		patch.QRImagePublicID = models.Some(qr.PublicID)
	}
	return patch
}

// Set changes one field by its json name. It reports false for unknown
// or read-only names.
func (f *SettingsForm) Set(field, value string) bool {
	s := &f.Settings
	targets := map[string]*string{
		"businessName":          &s.BusinessName,
		"addressLine1":          &s.AddressLine1,
		"addressLine2":          &s.AddressLine2,
		"addressLine3":          &s.AddressLine3,
		"businessHoursWeekdays": &s.BusinessHoursWeekdays,
		"businessHoursSaturday": &s.BusinessHoursSaturday,
		"businessHoursSunday":   &s.BusinessHoursSunday,
		"bankName":              &s.BankName,
		"accountNumber":         &s.AccountNumber,
		"ifsc":                  &s.IFSC,
		"branch":                &s.Branch,
		"accountHolderName":     &s.AccountHolderName,
		"upiId":                 &s.UPIID,
		"socialFacebook":        &s.SocialFacebook,
		"socialInstagram":       &s.SocialInstagram,
		"socialTwitter":         &s.SocialTwitter,
		"socialWhatsapp":        &s.SocialWhatsapp,
	}

	switch field {
	case "phones":
		f.Phones = atLeastOneRow(splitList(value))
		return true
	case "emails":
		f.Emails = atLeastOneRow(splitList(value))
		return true
	}
	target, ok := targets[field]
	if !ok {
		return false
	}
	*target = value
	return true
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func looseList(values []string) []models.LooseString {
	out := make([]models.LooseString, len(values))
	for i, v := range values {
		out[i] = models.LooseString(v)
	}
	return out
}
