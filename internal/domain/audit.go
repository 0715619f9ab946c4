package domain

import "time"

// Generation statuses recorded in the audit log.
const (
	StatusSuccess          = "success"
	StatusValidationFailed = "validation_failed"
	StatusProviderFailed   = "provider_failed"
	// StatusInternalFailed marks a call that failed before reaching the
	// provider for a reason other than caller input.
	StatusInternalFailed = "internal_failed"
)

// Generation is one audit row per gateway call. It carries request metadata
// and outcome only; prompt text and provider output are never stored.
//
// Rows are append-only and are not consulted while serving a generation.
type Generation struct {
	ID          string    `json:"id"           gorm:"type:char(36);primaryKey"`
	RequestID   string    `json:"request_id"   gorm:"type:varchar(64);index"`
	Kind        Kind      `json:"kind"         gorm:"type:varchar(16);not null;index:idx_gen_kind_status,priority:1;check:kind IN ('ideas','script','hashtags')"`
	Platform    string    `json:"platform,omitempty" gorm:"type:varchar(32)"`
	Niche       string    `json:"niche,omitempty"    gorm:"type:varchar(255)"`
	Tone        string    `json:"tone,omitempty"     gorm:"type:varchar(32)"`
	Model       string    `json:"model,omitempty"    gorm:"type:varchar(128)"`
	Temperature float64   `json:"temperature"`
	Status      string    `json:"status"       gorm:"type:varchar(32);not null;index:idx_gen_kind_status,priority:2"`
	LatencyMs   int64     `json:"latency_ms"`
	OutputChars int       `json:"output_chars"`
	Error       string    `json:"error,omitempty"    gorm:"type:varchar(1024)"`
	CreatedAt   time.Time `json:"created_at"   gorm:"index"`
}

// TableName returns the database table name for Generation.
func (Generation) TableName() string { return "generations" }
