package request

// VoidPaymentRequest request para anular un pago; el motivo es obligatorio
type VoidPaymentRequest struct {
	Reason string `json:"reason"`
}
