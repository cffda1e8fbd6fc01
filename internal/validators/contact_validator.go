package validators

import (
	"strings"

	"varsha-travels/internal/models"
)

const contactRequired = "Name, email, subject and message are required"

func NewContactMessage(in *models.ContactMessageInput) (*models.ContactMessage, error) {
	m := &models.ContactMessage{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone.String()),
		Subject:   strings.TrimSpace(in.Subject),
		Message:   strings.TrimSpace(in.Message),
		Status:    models.MessageStatusUnread,
		IsStarred: false,
	}
	if err := check(m, contactRequired); err != nil {
		return nil, err
	}
	return m, nil
}

// ApplyMessageUpdate applies status and starred independently. Nothing is
// changed when either value is invalid.
func ApplyMessageUpdate(m *models.ContactMessage, u *models.ContactMessageUpdate) error {
	status := m.Status
	if u.Status.Set {
		status = models.MessageStatus(u.Status.Value)
		if u.Status.Null || !status.Valid() {
			return &ValidationError{Field: "status", Tag: "message_status", Value: u.Status.Value, Message: invalidStatus}
		}
	}
	if u.IsStarred.Set && u.IsStarred.Null {
		return NewValidationError("isStarred", "Invalid starred value")
	}

	m.Status = status
	m.IsStarred = u.IsStarred.Or(m.IsStarred)
	return nil
}

// ApplyContactSettingsPatch merges p into s. Absent keys keep the stored
// value; the business name never becomes blank; QR fields only change to a
// non-empty value.
func ApplyContactSettingsPatch(s *models.ContactSettings, p *models.ContactSettingsPatch) error {
	next := *s
	setIfNotBlank(&next.BusinessName, p.BusinessName)
	setTrimmed(&next.AddressLine1, p.AddressLine1)
	setTrimmed(&next.AddressLine2, p.AddressLine2)
	setTrimmed(&next.AddressLine3, p.AddressLine3)

	if p.Phones.Present() {
		next.Phones = CleanList(p.Phones.Value)
	}
	if p.Emails.Present() {
		next.Emails = CleanList(p.Emails.Value)
	}

	setTrimmed(&next.BusinessHoursWeekdays, p.BusinessHoursWeekdays)
	setTrimmed(&next.BusinessHoursSaturday, p.BusinessHoursSaturday)
	setTrimmed(&next.BusinessHoursSunday, p.BusinessHoursSunday)

	setTrimmed(&next.BankName, p.BankName)
	setTrimmed(&next.AccountNumber, p.AccountNumber)
	setTrimmed(&next.IFSC, p.IFSC)
	setTrimmed(&next.Branch, p.Branch)
	setTrimmed(&next.AccountHolderName, p.AccountHolderName)
	setTrimmed(&next.UPIID, p.UPIID)

	setTrimmed(&next.SocialFacebook, p.SocialFacebook)
	setTrimmed(&next.SocialInstagram, p.SocialInstagram)
	setTrimmed(&next.SocialTwitter, p.SocialTwitter)
	setTrimmed(&next.SocialWhatsapp, p.SocialWhatsapp)

	setIfNotBlank(&next.QRImageURL, p.QRImageURL)
	setIfNotBlank(&next.QRImagePublicID, p.QRImagePublicID)

	if next.Phones == nil {
		next.Phones = []string{}
	}
	if next.Emails == nil {
		next.Emails = []string{}
	}

	if err := check(&next, "Invalid contact settings"); err != nil {
		return err
	}
	*s = next
	return nil
}
