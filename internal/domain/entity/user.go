package entity

import "slices"

// User is the marketplace profile of an account.
type User struct {
	ID          string
	Email       string
	DisplayName string
	FirstName   string
	LastName    string

	// BookListings holds the IDs of listings the user sells.
	BookListings []string
	// SavedBooks holds the IDs of listings the user bookmarked.
	SavedBooks []string
}

// Owns reports whether bookID is one of the user's listings.
func (u *User) Owns(bookID string) bool {
	return slices.Contains(u.BookListings, bookID)
}

// HasSaved reports whether bookID is bookmarked by the user.
func (u *User) HasSaved(bookID string) bool {
	return slices.Contains(u.SavedBooks, bookID)
}

// Identity is the authenticated actor of an operation, resolved once at the edge.
type Identity struct {
	UserID        string
	Email         string
	EmailVerified bool
}

// Session is the result of a successful sign-in.
type Session struct {
	Token    string
	Identity Identity
}

// Credential is a locally managed password login.
type Credential struct {
	UserID       string
	Email        string
	PasswordHash string
	Verified     bool

	// TokenGeneration is embedded in issued tokens; bumping it revokes them all.
	TokenGeneration int64
}
