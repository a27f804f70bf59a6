package dto

import "github.com/shopspring/decimal"

type ReserveResponse struct {
	ReserveFloor decimal.Decimal `json:"reserve_floor"`
}

type WagerResponse struct {
	RoundID string `json:"roundId"`
	Status  string `json:"status"`
}

type PayoutResponse struct {
	RoundID    string          `json:"roundId"`
	Recipient  string          `json:"recipient"`
	Amount     decimal.Decimal `json:"amount"`
	NewReserve decimal.Decimal `json:"new_reserve"`
}
