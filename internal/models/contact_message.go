package models

type MessageStatus string

const (
	MessageStatusUnread  MessageStatus = "unread"
	MessageStatusRead    MessageStatus = "read"
	MessageStatusReplied MessageStatus = "replied"
)

var MessageStatuses = []MessageStatus{
	MessageStatusUnread,
	MessageStatusRead,
	MessageStatusReplied,
}

func (s MessageStatus) Valid() bool {
	for _, st := range MessageStatuses {
		if s == st {
			return true
		}
	}
	return false
}

type ContactMessage struct {
	Base      `bson:",inline"`
	Name      string        `json:"name" bson:"name" validate:"required,max=200"`
	Email     string        `json:"email" bson:"email" validate:"required,max=254"`
	Phone     string        `json:"phone" bson:"phone" validate:"max=50"`
	Subject   string        `json:"subject" bson:"subject" validate:"required,max=300"`
	Message   string        `json:"message" bson:"message" validate:"required,max=5000"`
	Status    MessageStatus `json:"status" bson:"status" validate:"message_status"`
	IsStarred bool          `json:"isStarred" bson:"isStarred"`
}

type ContactMessageInput struct {
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Phone   LooseString `json:"phone"`
	Subject string      `json:"subject"`
	Message string      `json:"message"`
}

// ContactMessageUpdate changes status and/or starred; absent keys are kept.
type ContactMessageUpdate struct {
	Status    Optional[string] `json:"status"`
	IsStarred Optional[bool]   `json:"isStarred"`
}
