package domain

import "time"

// AuditAction names a lifecycle transition recorded in the audit trail.
type AuditAction string

const (
	ActionContractCreated     AuditAction = "contract.created"
	ActionContractUpdated     AuditAction = "contract.updated"
	ActionContractTerminated  AuditAction = "contract.terminated"
	ActionContractReactivated AuditAction = "contract.reactivated"
	ActionContractDeleted     AuditAction = "contract.deleted"
	ActionInvoiceCreated      AuditAction = "invoice.created"
	ActionInvoicePaid         AuditAction = "invoice.paid"
	ActionInvoiceDeleted      AuditAction = "invoice.deleted"
)

// AuditEvent records one lifecycle transition of a contract or invoice.
// ContractID groups invoice events under their contract.
type AuditEvent struct {
	ID         string         `json:"id" bson:"_id"`
	EntityKind EntityKind     `json:"entity_kind" bson:"entity_kind"`
	EntityID   uint           `json:"entity_id" bson:"entity_id"`
	ContractID uint           `json:"rr_id" bson:"rr_id"`
	OwnerID    uint           `json:"owner_id" bson:"owner_id"`
	Action     AuditAction    `json:"action" bson:"action"`
	OccurredAt time.Time      `json:"occurred_at" bson:"occurred_at"`
	Details    map[string]any `json:"details,omitempty" bson:"details,omitempty"`
}
