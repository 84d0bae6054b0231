package domain

type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusPending InvoiceStatus = "pending"
)

// Invoice is static billing reference data with no lifecycle.
type Invoice struct {
	ID     string
	Date   string
	Amount float64
	Status InvoiceStatus
}
