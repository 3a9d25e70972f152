package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"txtchange/internal/delivery/api/middleware"
	"txtchange/internal/delivery/api/response"
	"txtchange/internal/domain/entity"
	"txtchange/internal/domain/repository"
	"txtchange/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler serves the buyer-facing search and browse endpoints.
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler.
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// SearchRequest holds the query of a field search
type SearchRequest struct {
	Field string `query:"field" validate:"required,oneof=isbn title author"`
	Value string `query:"value" validate:"required"`
}

// Search finds listings whose field equals the value exactly.
func (h *SearchHandler) Search(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search query")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	books, err := h.searchUC.SearchByField(c.Request().Context(), identity, repository.BookField(req.Field), req.Value)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookResponses(books, identity.UserID))
}

// ByCategory lists the listings of one category.
func (h *SearchHandler) ByCategory(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	// Category names contain spaces.
	name, err := url.PathUnescape(c.Param("category"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid category")
	}

	books, err := h.searchUC.SearchByCategory(c.Request().Context(), identity, entity.Category(name))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookResponses(books, identity.UserID))
}

// Featured returns the home feed.
func (h *SearchHandler) Featured(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	books, err := h.searchUC.Featured(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookResponses(books, identity.UserID))
}

// Categories lists the categories and conditions a listing may take.
func (h *SearchHandler) Categories(c echo.Context) error {
	out := CatalogResponse{}
	for _, category := range entity.Categories() {
		out.Categories = append(out.Categories, string(category))
	}
	for _, condition := range entity.Conditions() {
		out.Conditions = append(out.Conditions, ConditionResponse{
			Name:        string(condition),
			Description: condition.Description(),
		})
	}

	return response.Success(c, http.StatusOK, out)
}
