package handler

import (
	"time"

	"txtchange/internal/domain/entity"
	"txtchange/internal/usecase"
)

// BookResponse is the wire form of a listing.
type BookResponse struct {
	ID               string             `json:"book_id"`
	OwnerID          string             `json:"user_id"`
	OwnerEmail       string             `json:"email"`
	Title            string             `json:"title"`
	Author           string             `json:"author"`
	ISBN             string             `json:"isbn"`
	ImageURL         string             `json:"imageURL"`
	Description      string             `json:"description"`
	ExternalCategory string             `json:"category"`
	Category         string             `json:"mcategory"`
	Condition        string             `json:"condition"`
	Price            float64            `json:"price"`
	Interests        []InterestResponse `json:"interest_list"`
	CreatedAt        time.Time          `json:"created_at"`
}

// InterestResponse is the wire form of an interest.
type InterestResponse struct {
	ID               string    `json:"interest_id"`
	BuyerID          string    `json:"buyer_id"`
	BuyerDisplayName string    `json:"buyer_display_name"`
	BuyerEmail       string    `json:"buyer_email"`
	BuyerConfirmed   bool      `json:"buyer_confirm"`
	SellerConfirmed  bool      `json:"seller_confirm"`
	State            string    `json:"state"`
	ExpressedAt      time.Time `json:"expressed_at"`
}

// UserResponse is the wire form of a marketplace profile.
type UserResponse struct {
	ID           string   `json:"user_id"`
	Email        string   `json:"email"`
	DisplayName  string   `json:"display_name"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	BookListings []string `json:"book_listings"`
	SavedBooks   []string `json:"saved_books"`
}

// SessionResponse carries a bearer token.
type SessionResponse struct {
	Token         string        `json:"token"`
	UserID        string        `json:"user_id"`
	Email         string        `json:"email"`
	EmailVerified bool          `json:"email_verified"`
	User          *UserResponse `json:"user,omitempty"`
}

// ConfirmResponse reports the interest after a toggle.
type ConfirmResponse struct {
	Interest  InterestResponse `json:"interest"`
	State     string           `json:"state"`
	Completed bool             `json:"completed"`
}

// SellerInterestResponse is one listing of the seller with its buyers.
type SellerInterestResponse struct {
	Book      BookResponse       `json:"book"`
	Interests []InterestResponse `json:"interests"`
}

// ConditionResponse pairs a condition with its grading description.
type ConditionResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CatalogResponse lists the values a listing may take.
type CatalogResponse struct {
	Categories []string            `json:"categories"`
	Conditions []ConditionResponse `json:"conditions"`
}

func toInterestResponse(i *entity.Interest) InterestResponse {
	return InterestResponse{
		ID:               i.ID,
		BuyerID:          i.BuyerID,
		BuyerDisplayName: i.BuyerDisplayName,
		BuyerEmail:       i.BuyerEmail,
		BuyerConfirmed:   i.BuyerConfirmed,
		SellerConfirmed:  i.SellerConfirmed,
		State:            string(i.State()),
		ExpressedAt:      i.ExpressedAt,
	}
}

// toBookResponse renders b for viewerID. The owner sees every interest, any
// other viewer only their own.
func toBookResponse(b *entity.Book, viewerID string) BookResponse {
	interests := make([]InterestResponse, 0, len(b.Interests))
	for _, i := range b.InterestList() {
		if b.OwnedBy(viewerID) || i.BuyerID == viewerID {
			interests = append(interests, toInterestResponse(i))
		}
	}

	return BookResponse{
		ID:               b.ID,
		OwnerID:          b.OwnerID,
		OwnerEmail:       b.OwnerEmail,
		Title:            b.Title,
		Author:           b.Author,
		ISBN:             b.ISBN,
		ImageURL:         b.ImageURL,
		Description:      b.Description,
		ExternalCategory: b.ExternalCategory,
		Category:         string(b.Category),
		Condition:        string(b.Condition),
		Price:            b.Price,
		Interests:        interests,
		CreatedAt:        b.CreatedAt,
	}
}

func toBookResponses(books []*entity.Book, viewerID string) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b, viewerID))
	}

	return out
}

func toUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	listings := u.BookListings
	if listings == nil {
		listings = []string{}
	}
	saved := u.SavedBooks
	if saved == nil {
		saved = []string{}
	}

	return &UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		DisplayName:  u.DisplayName,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		BookListings: listings,
		SavedBooks:   saved,
	}
}

func toSessionResponse(s *entity.Session, u *entity.User) SessionResponse {
	return SessionResponse{
		Token:         s.Token,
		UserID:        s.Identity.UserID,
		Email:         s.Identity.Email,
		EmailVerified: s.Identity.EmailVerified,
		User:          toUserResponse(u),
	}
}

func toConfirmResponse(out *usecase.ConfirmOutput) ConfirmResponse {
	return ConfirmResponse{
		Interest:  toInterestResponse(out.Interest),
		State:     string(out.State),
		Completed: out.Completed,
	}
}
