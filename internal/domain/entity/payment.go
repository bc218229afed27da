package entity

// InvoiceState is the payment gateway's view of an invoice
type InvoiceState string

// Invoice states reported by the gateway
const (
	InvoiceOpen     InvoiceState = "OPEN"
	InvoiceAccepted InvoiceState = "ACCEPTED" // hold invoice: funds locked, awaiting settle
	InvoiceSettled  InvoiceState = "SETTLED"
	InvoiceCanceled InvoiceState = "CANCELED"
)

// HoldInvoice is returned when the gateway creates an invoice
type HoldInvoice struct {
	PaymentRequest string
	PaymentAddr    string
}

// InvoiceStatus is the result of an invoice lookup
type InvoiceStatus struct {
	State      InvoiceState
	AmountPaid int64
}

// DecodedPayment is a decoded outbound payment request
type DecodedPayment struct {
	Amount      int64
	PaymentHash string
	Description string
}

// PaymentStatus is the gateway's view of an outbound payment
type PaymentStatus string

// Outbound payment statuses
const (
	PaymentInFlight  PaymentStatus = "IN_FLIGHT"
	PaymentSucceeded PaymentStatus = "SUCCEEDED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentUnknown   PaymentStatus = "UNKNOWN"
)
