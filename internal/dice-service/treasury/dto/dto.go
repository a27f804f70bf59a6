package dto

import "github.com/shopspring/decimal"

type ReserveResponse struct {
	ReserveFloor decimal.Decimal `json:"reserve_floor"`
}

type WagerRequest struct {
	RoundID string          `json:"roundId"`
	Amount  decimal.Decimal `json:"amount"`
}

type WagerRefRequest struct {
	RoundID string `json:"roundId"`
}

type PayoutRequest struct {
	RoundID   string          `json:"roundId"`
	Recipient string          `json:"recipient"`
	Amount    decimal.Decimal `json:"amount"`
}
