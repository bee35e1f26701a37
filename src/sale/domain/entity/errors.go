package entity

import "errors"

var (
	ErrNoCurrentSale        = errors.New("workspace has no current sale")
	ErrSaleNotCurrent       = errors.New("sale is not the current draft of this workspace")
	ErrStaleResponse        = errors.New("response belongs to a sale that is no longer current")
	ErrOperationInFlight    = errors.New("another operation is in flight for this workspace")
	ErrBalanceOutstanding   = errors.New("sale cannot be completed while remaining balance is positive")
	ErrNoPaymentSummary     = errors.New("no payment summary available for the current sale")
	ErrProductIDRequired    = errors.New("product_id is required")
	ErrInvalidQuantity      = errors.New("quantity must be greater than 0")
	ErrInvalidPaymentAmount = errors.New("payment amount must be greater than 0")
	ErrTenderTypeRequired   = errors.New("tender_type is required")
	ErrVoidReasonRequired   = errors.New("void reason is required")
	ErrSaleNotFound         = errors.New("sale not found")
	ErrPaymentNotFound      = errors.New("payment not found")
)
