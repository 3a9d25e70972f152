package handler

import (
	"log/slog"
	"net/http"

	"txtchange/internal/delivery/api/middleware"
	"txtchange/internal/delivery/api/response"
	"txtchange/internal/domain/entity"
	"txtchange/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ListingHandler serves the listing lifecycle, bookmarks and share codes.
type ListingHandler struct {
	listingUC usecase.ListingUsecase
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler.
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingUC: params.ListingUC,
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// CreateListingRequest represents the request body for a new listing
type CreateListingRequest struct {
	ISBN      string `json:"isbn"`
	Price     string `json:"price"`
	Condition string `json:"condition"`
	Category  string `json:"mcategory"`
}

// EditListingRequest represents the request body for editing a listing
type EditListingRequest struct {
	Price     string `json:"price"`
	Condition string `json:"condition"`
}

// ConfirmRequest toggles one party's confirmation of an interest
type ConfirmRequest struct {
	Party      string `json:"party" validate:"required,party"`
	InterestID string `json:"interest_id" validate:"required"`
}

// ResolveShareCodeRequest carries the decoded content of a scanned share code
type ResolveShareCodeRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// Create lists a book for sale.
func (h *ListingHandler) Create(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	book, err := h.listingUC.Create(c.Request().Context(), identity, usecase.CreateListingInput{
		ISBN:      req.ISBN,
		Price:     req.Price,
		Condition: req.Condition,
		Category:  req.Category,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toBookResponse(book, identity.UserID))
}

// Get returns one listing.
func (h *ListingHandler) Get(c echo.Context) error {
	identity, _ := middleware.GetIdentity(c)

	book, err := h.listingUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book, identity.UserID))
}

// ListMine returns the caller's listings.
func (h *ListingHandler) ListMine(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	books, err := h.listingUC.ListOwned(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookResponses(books, identity.UserID))
}

// Edit changes the price and condition of a listing.
func (h *ListingHandler) Edit(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req EditListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	book, err := h.listingUC.EditPriceCondition(c.Request().Context(), identity, c.Param("id"), usecase.EditListingInput{
		Condition: req.Condition,
		Price:     req.Price,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book, identity.UserID))
}

// Delete removes a listing of the caller.
func (h *ListingHandler) Delete(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.listingUC.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Confirm toggles the caller's side of an interest.
func (h *ListingHandler) Confirm(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ConfirmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.listingUC.ToggleConfirm(c.Request().Context(), identity, c.Param("id"), req.InterestID, entity.Party(req.Party))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toConfirmResponse(out))
}

// ShareCode renders the listing's QR code as a PNG.
func (h *ListingHandler) ShareCode(c echo.Context) error {
	png, err := h.listingUC.ShareCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveShareCode returns the listing a scanned code points to.
func (h *ListingHandler) ResolveShareCode(c echo.Context) error {
	identity, _ := middleware.GetIdentity(c)

	var req ResolveShareCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid share code input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	book, err := h.listingUC.ResolveShareCode(c.Request().Context(), req.Payload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book, identity.UserID))
}

// Contact returns a pre-filled email to the seller.
func (h *ListingHandler) Contact(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	draft, err := h.contactUC.ContactSeller(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, draft)
}

// Save bookmarks a listing.
func (h *ListingHandler) Save(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.listingUC.SaveBook(c.Request().Context(), identity, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Unsave drops a bookmark.
func (h *ListingHandler) Unsave(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.listingUC.UnsaveBook(c.Request().Context(), identity, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ListSaved returns the caller's bookmarked listings.
func (h *ListingHandler) ListSaved(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	books, err := h.listingUC.ListSaved(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookResponses(books, identity.UserID))
}
