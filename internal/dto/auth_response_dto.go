package dto

// UnlockRequest carries the shared password that opens the advances ledger.
type UnlockRequest struct {
	Password string `json:"password" binding:"required"`
}

// UnlockResponse returns the bearer token for the API.
type UnlockResponse struct {
	Token string `json:"token"`
}
