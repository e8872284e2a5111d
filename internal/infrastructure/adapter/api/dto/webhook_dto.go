package dto

// TransferOutcomeEvent is the gateway's webhook payload for a dispatched transfer
type TransferOutcomeEvent struct {
	TransferID string `json:"transferId" binding:"required"`
	Outcome    string `json:"outcome" binding:"required,oneof=success failure"`
	OnchainRef string `json:"onchainRef"`
	Reason     string `json:"reason"`
}
