package events

// Evento publicado no início de cada rodada, identificando a origem da aposta.
type BetSource struct {
	RoundID  string `json:"round_id"`
	Origin   string `json:"origin"`
	TsMicros int64  `json:"ts_micros"`
}
