package synth

import "github.com/D-C-Legacy/ad-admin/internal/domain"

// Invoices returns the static billing table. Reference data only, no
// lifecycle.
func Invoices() []domain.Invoice {
	return []domain.Invoice{
		{ID: "inv-001", Date: "2026-01-31", Amount: 15420.00, Status: domain.InvoiceStatusPaid},
		{ID: "inv-002", Date: "2025-12-31", Amount: 18230.50, Status: domain.InvoiceStatusPaid},
		{ID: "inv-003", Date: "2025-11-30", Amount: 12890.75, Status: domain.InvoiceStatusPaid},
		{ID: "inv-004", Date: "2026-02-05", Amount: 8420.55, Status: domain.InvoiceStatusPending},
	}
}
