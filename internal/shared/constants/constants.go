package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers                 = "users"
	TableSubscriptions         = "subscriptions"
	TableSubscriptionEvents    = "subscription_events"
	TableSubscriptionLineItems = "subscription_line_items"
	TableOrders                = "orders"
	TableOrderLineItems        = "order_line_items"
	TableSubscribables         = "subscribables"

	// Subscription status
	SubscriptionStatusActive    = "active"
	SubscriptionStatusPaused    = "paused"
	SubscriptionStatusCancelled = "cancelled"

	// Order state
	OrderStateCart     = "cart"
	OrderStateComplete = "complete"
)
