package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContactDraft(t *testing.T) {
	draft := NewContactDraft("Calculus", 12.5, "seller@uni.edu", "buyer@uni.edu", "support@txtchange.test")

	assert.Equal(t, "seller@uni.edu", draft.To)
	assert.Equal(t, "support@txtchange.test", draft.Bcc)
	assert.Equal(t, "buyer@uni.edu", draft.ReplyTo)
	assert.Equal(t, "txtChange: Interest in Book Calculus", draft.Subject)
	assert.Equal(t, "Hello, I am interested in purchasing your book titled 'Calculus' for $12.50. "+
		"You can contact me at buyer@uni.edu.\n\n"+
		"Reminder from txtChange Team: Please check the confirmation boxes in the book details page once the sale has been completed.",
		draft.Body)
	assert.True(t, strings.HasPrefix(draft.MailtoURL,
		"mailto:seller@uni.edu?bcc=support%40txtchange.test&subject=txtChange%3A%20Interest%20in%20Book%20Calculus&body=Hello%2C%20I%20am"))
	assert.NotContains(t, draft.MailtoURL, "+")
}

func TestNewContactDraft_WithoutSupport(t *testing.T) {
	draft := NewContactDraft("Calculus", 12, "seller@uni.edu", "buyer@uni.edu", "")

	assert.Empty(t, draft.Bcc)
	assert.Contains(t, draft.MailtoURL, "mailto:seller@uni.edu?subject=")
	assert.NotContains(t, draft.MailtoURL, "bcc=")
}
