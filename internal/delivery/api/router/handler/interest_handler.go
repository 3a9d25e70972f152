package handler

import (
	"log/slog"
	"net/http"

	"txtchange/internal/delivery/api/middleware"
	"txtchange/internal/delivery/api/response"
	"txtchange/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InterestHandlerParams holds dependencies for InterestHandler, injected by Fx.
type InterestHandlerParams struct {
	fx.In

	InterestUC usecase.InterestUsecase
	Logger     *slog.Logger
}

// InterestHandler serves buyers' interest in listings.
type InterestHandler struct {
	interestUC usecase.InterestUsecase
	logger     *slog.Logger
}

// NewInterestHandler is the constructor for InterestHandler.
func NewInterestHandler(params InterestHandlerParams) *InterestHandler {
	return &InterestHandler{
		interestUC: params.InterestUC,
		logger:     params.Logger,
	}
}

// Add records the caller's interest in a listing.
func (h *InterestHandler) Add(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	interest, err := h.interestUC.AddInterest(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toInterestResponse(interest))
}

// Remove withdraws an interest.
func (h *InterestHandler) Remove(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.interestUC.RemoveInterest(c.Request().Context(), identity, c.Param("id"), c.Param("interestId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ListSeller returns the caller's listings with the buyers interested in each.
func (h *InterestHandler) ListSeller(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	out := make([]SellerInterestResponse, 0)
	for entry, err := range h.interestUC.ListSellerInterest(c.Request().Context(), identity) {
		if err != nil {
			return response.HandleAppError(c, err)
		}

		interests := make([]InterestResponse, 0, len(entry.Interests))
		for _, i := range entry.Interests {
			interests = append(interests, toInterestResponse(i))
		}
		out = append(out, SellerInterestResponse{
			Book:      toBookResponse(entry.Book, identity.UserID),
			Interests: interests,
		})
	}

	return response.Success(c, http.StatusOK, out)
}
