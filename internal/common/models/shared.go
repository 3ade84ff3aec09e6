package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContextKey string

const (
	// TenantIDKey carries the acting operator's tenant scope, when present.
	TenantIDKey ContextKey = "tenant_id"
	// RequestIDKey carries the per-request correlation ID forwarded upstream.
	RequestIDKey ContextKey = "request_id"
)

type AuditAction string

const (
	AuditActionCreate       AuditAction = "CREATE"
	AuditActionUpdate       AuditAction = "UPDATE"
	AuditActionDelete       AuditAction = "DELETE"
	AuditActionStatusToggle AuditAction = "STATUS_TOGGLE"
	AuditActionProvision    AuditAction = "PROVISION"
	AuditActionUpload       AuditAction = "UPLOAD"
	AuditActionExport       AuditAction = "EXPORT"
	AuditActionClockIn      AuditAction = "CLOCK_IN"
	AuditActionClockOut     AuditAction = "CLOCK_OUT"
)

type Change struct {
	Old interface{} `bson:"old" json:"old"`
	New interface{} `bson:"new" json:"new"`
}

// AuditLog records one operator action taken through the console. It is the
// only HRMS-adjacent data the console persists itself; entity data stays
// upstream.
type AuditLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID  string             `bson:"tenant_id,omitempty" json:"tenant_id,omitempty"`
	Action    AuditAction        `bson:"action" json:"action"`
	Screen    string             `bson:"screen" json:"screen"` // The console screen name (roles, tenants, ...)
	RecordID  string             `bson:"record_id" json:"record_id"`
	ActorID   string             `bson:"actor_id" json:"actor_id"`
	Changes   map[string]Change  `bson:"changes,omitempty" json:"changes,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// Log is the shape the async zap sink writes to the logs collection.
type Log struct {
	Message      string    `bson:"message" json:"message"`
	IpAddress    string    `bson:"ip_address" json:"ip_address"`
	ActorID      string    `bson:"actor_id,omitempty" json:"actor_id,omitempty"`
	LogLevelId   int       `bson:"log_level_id" json:"log_level_id"`
	Caller       string    `bson:"caller,omitempty" json:"caller,omitempty"`
	CreatedOnUtc time.Time `bson:"created_on_utc" json:"created_on_utc"`
}
