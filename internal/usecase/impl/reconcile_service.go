package impl

import (
	"context"
	"log/slog"
	"sort"

	deliverycontext "txtchange/internal/delivery/context"
	"txtchange/internal/domain/entity"
	"txtchange/internal/domain/repository"
	"txtchange/internal/errors"
	"txtchange/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type reconcileService struct {
	bookRepo repository.BookRepository
	logger   *slog.Logger
}

// ReconcileServiceParams holds dependencies for ReconcileService, injected by Fx.
type ReconcileServiceParams struct {
	fx.In

	BookRepo repository.BookRepository
	Logger   *slog.Logger
}

// NewReconcileService is the constructor for reconcileService.
func NewReconcileService(params ReconcileServiceParams) usecase.ReconcileUsecase {
	return &reconcileService{
		bookRepo: params.BookRepo,
		logger:   params.Logger,
	}
}

func (s *reconcileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Reconcile scans the flat collection and every category collection
// concurrently, then compares them.
func (s *reconcileService) Reconcile(ctx context.Context, repair bool) (*usecase.ReconcileReport, error) {
	categories := entity.Categories()
	collections := make([]string, 0, len(categories)+1)
	collections = append(collections, repository.BooksCollection)
	for _, category := range categories {
		collections = append(collections, category.Collection())
	}

	scanned := make([][]*entity.Book, len(collections))
	group, groupCtx := errgroup.WithContext(ctx)
	for idx, collection := range collections {
		group.Go(func() error {
			books, err := s.bookRepo.FindAll(groupCtx, collection, 0)
			if err != nil {
				return errors.Wrapf(err, "scan %s", collection)
			}
			scanned[idx] = books

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	flat := make(map[string]*entity.Book, len(scanned[0]))
	for _, book := range scanned[0] {
		flat[book.ID] = book
	}

	report := &usecase.ReconcileReport{Listings: len(flat)}
	filed := make(map[string]bool, len(flat))
	for idx, category := range categories {
		for _, copied := range scanned[idx+1] {
			record, ok := flat[copied.ID]
			kind := classifyCopy(record, copied, category, ok)
			if kind == "" {
				filed[copied.ID] = true

				continue
			}
			if kind == usecase.FindingDivergent {
				filed[copied.ID] = true
			}
			report.Findings = append(report.Findings, usecase.ReconcileFinding{
				BookID:     copied.ID,
				Collection: category.Collection(),
				Kind:       kind,
			})
		}
	}
	for id, record := range flat {
		if !filed[id] {
			report.Findings = append(report.Findings, usecase.ReconcileFinding{
				BookID:     id,
				Collection: record.Category.Collection(),
				Kind:       usecase.FindingMissing,
			})
		}
	}

	sort.Slice(report.Findings, func(a, b int) bool {
		if report.Findings[a].Collection == report.Findings[b].Collection {
			return report.Findings[a].BookID < report.Findings[b].BookID
		}

		return report.Findings[a].Collection < report.Findings[b].Collection
	})

	s.log(ctx).Info("Reconcile scan finished",
		slog.Int("listings", report.Listings),
		slog.Int("findings", len(report.Findings)),
	)

	if !repair {
		return report, nil
	}

	return report, s.repair(ctx, report, flat)
}

// repair fixes every finding it can and reports the ones it could not.
func (s *reconcileService) repair(ctx context.Context, report *usecase.ReconcileReport, flat map[string]*entity.Book) error {
	var errs []error
	for idx := range report.Findings {
		finding := &report.Findings[idx]

		var err error
		switch finding.Kind {
		case usecase.FindingMissing, usecase.FindingDivergent:
			record := flat[finding.BookID]
			if !record.Category.Valid() {
				err = errors.Errorf("listing %s has unknown category %q", record.ID, record.Category)

				break
			}
			err = s.bookRepo.Save(ctx, record.Category.Collection(), record)
		case usecase.FindingOrphan, usecase.FindingMisfiled:
			err = s.bookRepo.Delete(ctx, finding.Collection, finding.BookID)
		}

		if err != nil {
			s.log(ctx).Error("Repair failed",
				slog.String("book_id", finding.BookID),
				slog.String("collection", finding.Collection),
				slog.Any("error", err),
			)
			errs = append(errs, errors.Wrapf(err, "repair %s in %s", finding.BookID, finding.Collection))

			continue
		}
		finding.Repaired = true
	}

	return errors.Join(errs...)
}

// classifyCopy returns the problem with a copy found in category, or an empty
// kind when the copy is consistent.
func classifyCopy(record, copied *entity.Book, category entity.Category, exists bool) usecase.FindingKind {
	switch {
	case !exists:
		return usecase.FindingOrphan
	case record.Category != category:
		return usecase.FindingMisfiled
	case !sameListing(record, copied):
		return usecase.FindingDivergent
	default:
		return ""
	}
}

// sameListing compares the attributes both copies must agree on.
func sameListing(a, b *entity.Book) bool {
	if a.OwnerID != b.OwnerID || a.OwnerEmail != b.OwnerEmail ||
		a.Title != b.Title || a.Author != b.Author || a.ISBN != b.ISBN ||
		a.Category != b.Category || a.Condition != b.Condition || a.Price != b.Price ||
		len(a.Interests) != len(b.Interests) {
		return false
	}

	for id, interest := range a.Interests {
		other, ok := b.Interests[id]
		if !ok || interest.BuyerID != other.BuyerID ||
			interest.BuyerConfirmed != other.BuyerConfirmed ||
			interest.SellerConfirmed != other.SellerConfirmed {
			return false
		}
	}

	return true
}
