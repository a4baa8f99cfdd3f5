package gateway

// Status is the normalized charge outcome vocabulary exposed to callers.
// Vendor statuses never leave this package.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusDeclined Status = "DECLINED"
	StatusError    Status = "ERROR"
)

var vendorStatusMap = map[string]Status{
	"PENDING":  StatusPending,
	"APPROVED": StatusApproved,
	"DECLINED": StatusDeclined,
	"VOIDED":   StatusDeclined,
	"ERROR":    StatusError,
}

// NormalizeStatus maps the vendor's status vocabulary onto the internal one.
// Unknown vendor statuses fail closed as ERROR.
func NormalizeStatus(vendorStatus string) Status {
	if status, exists := vendorStatusMap[vendorStatus]; exists {
		return status
	}

	return StatusError
}
