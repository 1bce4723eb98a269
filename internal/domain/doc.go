// Package domain contains the core entities of the Commitly web layer:
// the authenticated identity, circles and their parallel-running signals,
// rivals, activity streams and rhythms, dashboards, and notification
// channel settings. All entities are owned by the Commitly backend API
// and pass through this service unchanged; the domain layer defines their
// Go representations and the error taxonomy shared across layers.
package domain
