package sms

import (
	"context"
	"errors"
	"strings"
)

var ErrNoRecipients = errors.New("sms: no recipients")

// SMSProvider sends short text alerts. Implementations must be safe for
// concurrent use.
type SMSProvider interface {
	SendSMS(ctx context.Context, request *SMSRequest) (*SMSResponse, error)
	SendBulkSMS(ctx context.Context, requests []*SMSRequest) ([]*SMSResponse, error)
	Name() string
}

type SMSRequest struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Message string `json:"message"`
	Type    string `json:"type"` // transactional, promotional
}

type SMSResponse struct {
	To        string `json:"to"`
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// Fanout builds one request per recipient, skipping blanks.
func Fanout(recipients []string, message string) []*SMSRequest {
	requests := make([]*SMSRequest, 0, len(recipients))
	for _, to := range recipients {
		to = strings.TrimSpace(to)
		if to == "" {
			continue
		}
		requests = append(requests, &SMSRequest{
			To:      to,
			Message: message,
			Type:    "transactional",
		})
	}
	return requests
}

// Truncate shortens message to at most limit runes, marking the cut.
func Truncate(message string, limit int) string {
	runes := []rune(message)
	if limit <= 0 || len(runes) <= limit {
		return message
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

func sendEach(ctx context.Context, p SMSProvider, requests []*SMSRequest) []*SMSResponse {
	responses := make([]*SMSResponse, len(requests))
	for i, req := range requests {
		resp, err := p.SendSMS(ctx, req)
		if err != nil {
			resp = &SMSResponse{
				To:     req.To,
				Status: "failed",
				Error:  err.Error(),
			}
		}
		responses[i] = resp
	}
	return responses
}
