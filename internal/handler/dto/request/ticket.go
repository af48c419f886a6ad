package request

type PurchaseTicketRequest struct {
	Quantity int32 `json:"quantity" binding:"required,min=1"`
}
