package document

import (
	"time"

	"txtchange/internal/domain/entity"
)

// Book document keys. They match the documents written by the mobile client.
const (
	KeyBookID           = "book_id"
	KeyOwnerID          = "user_id"
	KeyOwnerEmail       = "email"
	KeyTitle            = "title"
	KeyAuthor           = "author"
	KeyISBN             = "isbn"
	KeyImageURL         = "imageURL"
	KeyDescription      = "description"
	KeyExternalCategory = "category"
	KeyCategory         = "mcategory"
	KeyCondition        = "condition"
	KeyPrice            = "price"
	KeySellerConfirm    = "seller_confirm"
	KeyBuyerConfirm     = "buyer_confirm"
	KeyInterestList     = "interest_list"
	KeyCreatedAt        = "created_at"
)

// Interest entry keys inside interest_list.<interestId>.
const (
	KeyInterestID       = "interest_id"
	KeyBuyerID          = "buyer_id"
	KeyBuyerDisplayName = "buyer_display_name"
	KeyBuyerEmail       = "buyer_email"
	KeyExpressedAt      = "expressed_at"
)

// User document keys.
const (
	KeyUserID       = "user_id"
	KeyDisplayName  = "display_name"
	KeyFirstName    = "first_name"
	KeyLastName     = "last_name"
	KeyEmail        = "email"
	KeyBookListings = "book_listings"
	KeySavedBooks   = "saved_books"
)

// Credential document keys.
const (
	KeyPasswordHash    = "password_hash"
	KeyVerified        = "verified"
	KeyTokenGeneration = "token_generation"
)

// ConfirmKey returns the interest entry key holding party's confirmation bit.
func ConfirmKey(party entity.Party) string {
	if party == entity.PartySeller {
		return KeySellerConfirm
	}

	return KeyBuyerConfirm
}

// BookToData encodes a listing.
func BookToData(b *entity.Book) map[string]any {
	interests := make(map[string]any, len(b.Interests))
	for id, i := range b.Interests {
		interests[id] = InterestToData(i)
	}

	return map[string]any{
		KeyBookID:           b.ID,
		KeyOwnerID:          b.OwnerID,
		KeyOwnerEmail:       b.OwnerEmail,
		KeyTitle:            b.Title,
		KeyAuthor:           b.Author,
		KeyISBN:             b.ISBN,
		KeyImageURL:         b.ImageURL,
		KeyDescription:      b.Description,
		KeyExternalCategory: b.ExternalCategory,
		KeyCategory:         string(b.Category),
		KeyCondition:        string(b.Condition),
		KeyPrice:            b.Price,
		KeySellerConfirm:    b.SellerConfirmed,
		KeyBuyerConfirm:     b.BuyerConfirmed,
		KeyInterestList:     interests,
		KeyCreatedAt:        formatTime(b.CreatedAt),
	}
}

// BookFromSnapshot decodes a listing.
func BookFromSnapshot(s *Snapshot) *entity.Book {
	d := s.Data
	book := &entity.Book{
		ID:               stringOr(d[KeyBookID], s.ID),
		OwnerID:          stringOr(d[KeyOwnerID], ""),
		OwnerEmail:       stringOr(d[KeyOwnerEmail], ""),
		Title:            stringOr(d[KeyTitle], ""),
		Author:           stringOr(d[KeyAuthor], ""),
		ISBN:             stringOr(d[KeyISBN], ""),
		ImageURL:         stringOr(d[KeyImageURL], ""),
		Description:      stringOr(d[KeyDescription], ""),
		ExternalCategory: stringOr(d[KeyExternalCategory], ""),
		Category:         entity.Category(stringOr(d[KeyCategory], "")),
		Condition:        entity.Condition(stringOr(d[KeyCondition], "")),
		Price:            floatOr(d[KeyPrice]),
		SellerConfirmed:  boolOr(d[KeySellerConfirm]),
		BuyerConfirmed:   boolOr(d[KeyBuyerConfirm]),
		Interests:        map[string]*entity.Interest{},
		CreatedAt:        parseTime(d[KeyCreatedAt]),
	}

	if raw, ok := d[KeyInterestList].(map[string]any); ok {
		for id, entry := range raw {
			if fields, ok := entry.(map[string]any); ok {
				book.Interests[id] = interestFromData(id, fields)
			}
		}
	}

	return book
}

// InterestToData encodes one interest_list entry.
func InterestToData(i *entity.Interest) map[string]any {
	return map[string]any{
		KeyInterestID:       i.ID,
		KeyBuyerID:          i.BuyerID,
		KeyBuyerDisplayName: i.BuyerDisplayName,
		KeyBuyerEmail:       i.BuyerEmail,
		KeyBuyerConfirm:     i.BuyerConfirmed,
		KeySellerConfirm:    i.SellerConfirmed,
		KeyExpressedAt:      formatTime(i.ExpressedAt),
	}
}

func interestFromData(id string, d map[string]any) *entity.Interest {
	return &entity.Interest{
		ID:               stringOr(d[KeyInterestID], id),
		BuyerID:          stringOr(d[KeyBuyerID], ""),
		BuyerDisplayName: stringOr(d[KeyBuyerDisplayName], ""),
		BuyerEmail:       stringOr(d[KeyBuyerEmail], ""),
		BuyerConfirmed:   boolOr(d[KeyBuyerConfirm]),
		SellerConfirmed:  boolOr(d[KeySellerConfirm]),
		ExpressedAt:      parseTime(d[KeyExpressedAt]),
	}
}

// UserToData encodes a profile.
func UserToData(u *entity.User) map[string]any {
	return map[string]any{
		KeyUserID:       u.ID,
		KeyDisplayName:  u.DisplayName,
		KeyFirstName:    u.FirstName,
		KeyLastName:     u.LastName,
		KeyEmail:        u.Email,
		KeyBookListings: stringsToAny(u.BookListings),
		KeySavedBooks:   stringsToAny(u.SavedBooks),
	}
}

// UserFromSnapshot decodes a profile.
func UserFromSnapshot(s *Snapshot) *entity.User {
	d := s.Data

	return &entity.User{
		ID:           stringOr(d[KeyUserID], s.ID),
		DisplayName:  stringOr(d[KeyDisplayName], ""),
		FirstName:    stringOr(d[KeyFirstName], ""),
		LastName:     stringOr(d[KeyLastName], ""),
		Email:        stringOr(d[KeyEmail], ""),
		BookListings: anyToStrings(d[KeyBookListings]),
		SavedBooks:   anyToStrings(d[KeySavedBooks]),
	}
}

// CredentialToData encodes a local login.
func CredentialToData(c *entity.Credential) map[string]any {
	return map[string]any{
		KeyUserID:          c.UserID,
		KeyEmail:           c.Email,
		KeyPasswordHash:    c.PasswordHash,
		KeyVerified:        c.Verified,
		KeyTokenGeneration: float64(c.TokenGeneration),
	}
}

// CredentialFromSnapshot decodes a local login.
func CredentialFromSnapshot(s *Snapshot) *entity.Credential {
	d := s.Data

	return &entity.Credential{
		UserID:          stringOr(d[KeyUserID], ""),
		Email:           stringOr(d[KeyEmail], s.ID),
		PasswordHash:    stringOr(d[KeyPasswordHash], ""),
		Verified:        boolOr(d[KeyVerified]),
		TokenGeneration: int64(floatOr(d[KeyTokenGeneration])),
	}
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}

	return fallback
}

func boolOr(v any) bool {
	b, _ := v.(bool)

	return b
}

func floatOr(v any) float64 {
	f, _ := asFloat(v)

	return f
}

func stringsToAny(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}

	return out
}

func anyToStrings(v any) []string {
	arr := toAnySlice(v)
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}

	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return time.Time{}
		}

		return parsed
	default:
		return time.Time{}
	}
}
