package response

import (
	"time"

	"talent-mailer/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AcceptedResponse struct {
	Message string `json:"message"`
}

type EmailSendResponse struct {
	ID             uuid.UUID  `json:"id"`
	Purpose        string     `json:"purpose"`
	RecipientEmail string     `json:"recipient_email"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	IdempotencyKey string     `json:"idempotency_key"`
	CooldownBucket time.Time  `json:"cooldown_bucket"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

type CurrentWindowResponse struct {
	Purpose        string             `json:"purpose"`
	IdempotencyKey string             `json:"idempotency_key"`
	CooldownBucket time.Time          `json:"cooldown_bucket"`
	WindowEndsAt   time.Time          `json:"window_ends_at"`
	Claimed        bool               `json:"claimed"`
	Entry          *EmailSendResponse `json:"entry,omitempty"`
}

type EmailSendListResponse struct {
	Items []*EmailSendResponse `json:"items"`
}

func FromEmailSendView(v *queries.EmailSendView) (*EmailSendResponse, error) {
	var res EmailSendResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromCurrentWindowView(v *queries.CurrentWindowView) (*CurrentWindowResponse, error) {
	res := &CurrentWindowResponse{
		Purpose:        v.Purpose,
		IdempotencyKey: v.IdempotencyKey,
		CooldownBucket: v.CooldownBucket,
		WindowEndsAt:   v.WindowEndsAt,
		Claimed:        v.Entry != nil,
	}
	if v.Entry != nil {
		entry, err := FromEmailSendView(v.Entry)
		if err != nil {
			return nil, err
		}
		res.Entry = entry
	}
	return res, nil
}

func FromEmailSendList(views []*queries.EmailSendView) (*EmailSendListResponse, error) {
	items := make([]*EmailSendResponse, 0, len(views))
	for _, v := range views {
		item, err := FromEmailSendView(v)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return &EmailSendListResponse{Items: items}, nil
}
