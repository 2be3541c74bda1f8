// Package domain contains the core domain entities and types used by the
// application. These types describe the email discovery pipeline (people,
// company domains, naming formats, candidates, probe outcomes and scored
// results) together with persisted lookups, and are intentionally free of
// infrastructure concerns so they can be shared across packages.
package domain
