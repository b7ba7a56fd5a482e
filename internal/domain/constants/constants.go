// Package constants contains string constants shared across layers.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider names accepted by the pubsub.provider config key.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Message attribute keys attached to published click events.
const (
	AttrEventType = "event_type"
	AttrLinkID    = "link_id"
	AttrRequestID = "request_id"
)

// EventTypeLinkClicked identifies a link click event.
const EventTypeLinkClicked = "link.clicked"
