package entity

import (
	"fmt"
	"net/url"
	"strings"

	"txtchange/internal/util"
)

// ContactDraft is a pre-filled email from a buyer to a seller.
type ContactDraft struct {
	To        string `json:"to"`
	Bcc       string `json:"bcc"`
	ReplyTo   string `json:"reply_to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	MailtoURL string `json:"mailto_url"`
}

// NewContactDraft composes the buyer's purchase enquiry for a listing.
func NewContactDraft(title string, price float64, sellerEmail, buyerEmail, supportEmail string) *ContactDraft {
	draft := &ContactDraft{
		To:      sellerEmail,
		Bcc:     supportEmail,
		ReplyTo: buyerEmail,
		Subject: "txtChange: Interest in Book " + title,
		Body: fmt.Sprintf("Hello, I am interested in purchasing your book titled '%s' for $%s. You can contact me at %s.\n\n"+
			"Reminder from txtChange Team: Please check the confirmation boxes in the book details page once the sale has been completed.",
			title, util.FormatPrice(price), buyerEmail),
	}

	params := []string{"subject=" + mailtoEscape(draft.Subject), "body=" + mailtoEscape(draft.Body)}
	if supportEmail != "" {
		params = append([]string{"bcc=" + mailtoEscape(supportEmail)}, params...)
	}
	draft.MailtoURL = "mailto:" + sellerEmail + "?" + strings.Join(params, "&")

	return draft
}

// mailtoEscape percent-encodes s for a mailto header; spaces stay %20.
func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
