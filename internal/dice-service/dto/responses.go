package dto

import "github.com/shopspring/decimal"

type PlaceBetResponse struct {
	RoundID       string          `json:"roundId"`
	Status        string          `json:"status"`
	WinningNumber *int            `json:"winning_number,omitempty"`
	RawSpin       string          `json:"raw_spin,omitempty"`
	MainBetWon    bool            `json:"main_bet_won"`
	SideBetWon    bool            `json:"side_bet_won"`
	MainBetPayout decimal.Decimal `json:"main_bet_payout"`
	SideBetPayout decimal.Decimal `json:"side_bet_payout"`
	TotalPayout   decimal.Decimal `json:"total_payout"`
}

type RejectResponse struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type RoundStatusResponse struct {
	RoundID       string          `json:"roundId"`
	Status        string          `json:"status"`
	RejectReason  string          `json:"reject_reason,omitempty"`
	WinningNumber *int            `json:"winning_number,omitempty"`
	RawSpin       *string         `json:"raw_spin,omitempty"`
	TotalPayout   decimal.Decimal `json:"total_payout"`
}

type GameStateResponse struct {
	Active bool `json:"active"`
}

type MultipliersResponse struct {
	Multipliers map[string]decimal.Decimal `json:"multipliers"`
}
