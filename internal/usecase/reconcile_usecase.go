package usecase

import "context"

// FindingKind classifies a disagreement between the flat and category copies.
type FindingKind string

const (
	// FindingMissing is a listing without its category copy.
	FindingMissing FindingKind = "missing"
	// FindingOrphan is a category copy without a flat record.
	FindingOrphan FindingKind = "orphan"
	// FindingMisfiled is a copy kept in a category other than the listing's.
	FindingMisfiled FindingKind = "misfiled"
	// FindingDivergent is a category copy whose content differs from the flat record.
	FindingDivergent FindingKind = "divergent"
)

// ReconcileFinding is one inconsistency between the two copies of a listing.
type ReconcileFinding struct {
	BookID     string
	Collection string
	Kind       FindingKind
	Repaired   bool
}

// ReconcileReport is the outcome of one scan.
type ReconcileReport struct {
	Listings int
	Findings []ReconcileFinding
}

// ReconcileUsecase audits the denormalized category collections.
type ReconcileUsecase interface {
	// Reconcile compares every category copy against the flat record. With
	// repair set, category copies are rewritten from the flat record and
	// orphans are deleted.
	Reconcile(ctx context.Context, repair bool) (*ReconcileReport, error)
}
