package domain

import "time"

// AuditFields records who touched a row and when. The actor is whatever
// X-Actor-ID the gateway forwarded; "system" for background postings.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// Touch stamps the update fields.
func (a *AuditFields) Touch(actorID string, at time.Time) {
	a.LastUpdatedAt = at
	a.LastUpdatedBy = actorID
}

// NewAuditFields stamps a freshly created row.
func NewAuditFields(actorID string, at time.Time) AuditFields {
	return AuditFields{CreatedAt: at, CreatedBy: actorID, LastUpdatedAt: at, LastUpdatedBy: actorID}
}
