package topics

const (
	// Auditoria das rodadas do dice
	DiceBetSource       = "dice_bet_source"
	DiceBetPlaced       = "dice_bet_placed"
	DiceBetResult       = "dice_bet_result"
	DicePayoutBreakdown = "dice_payout_breakdown"
	DiceFundTransfer    = "dice_fund_transfer"
)
