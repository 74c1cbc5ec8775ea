package dto

// Ack is returned by write operations instead of the written entity.
type Ack struct {
	StatusCode  int    `json:"status_code"`
	Transaction string `json:"transaction"`
}

// NewAck builds an Ack
func NewAck(statusCode int, transaction string) Ack {
	return Ack{StatusCode: statusCode, Transaction: transaction}
}
