package engine

import (
	"encoding/hex"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/sha3"
)

const spinModulus = 100000

var spinModulusBig = big.NewInt(spinModulus)

// Generate deriva o número vencedor da rodada a partir do hash da transação,
// do timestamp (microssegundos) e da seed do usuário. Determinístico por
// construção: a mesma tripla produz sempre o mesmo resultado, o que permite
// replay e verificação. Não é seguro contra quem controla o hash ou o
// timestamp; é pseudo-aleatório do ponto de vista do jogador.
func Generate(txHash []byte, timestampMicros int64, userSeed string) Outcome {
	seed := hex.EncodeToString(txHash) + strconv.FormatInt(timestampMicros, 10) + userSeed
	digest := sha3.Sum256([]byte(seed))

	n := new(big.Int).SetBytes(digest[:])
	spin := n.Mod(n, spinModulusBig).Int64()

	return Outcome{
		// floor(spin/100000 * 100)
		WinningNumber: int(spin / 1000),
		RawSpin:       decimal.New(spin, -5),
	}
}
