// Package constants collects string identifiers shared between config and infra wiring.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Document store providers
const (
	StoreProviderFirestore = "firestore"
	StoreProviderPostgres  = "postgres"
	StoreProviderMemory    = "memory"
)

// Store consistency modes
const (
	ConsistencyTransactional = "transactional"
	ConsistencyIndependent   = "independent"
)

// Auth providers
const (
	AuthProviderFirebase = "firebase"
	AuthProviderLocal    = "local"
)

// Listing event types published to the worker
const (
	EventInterestAdded    = "interest.added"
	EventListingCompleted = "listing.completed"
	EventListingDeleted   = "listing.deleted"
)
