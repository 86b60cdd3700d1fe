package idgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Префикс кода подтверждения записи
const confirmationPrefix = "TV"

// Длина случайного суффикса кода подтверждения.
// 6 символов base36 дают ~2.2 млрд комбинаций на каждую миллисекунду,
// что делает коллизии практически невозможными.
const confirmationSuffixLen = 6

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ConfirmationCode генерирует код подтверждения записи вида "TV-MB3K2F1A-X7Q4ZP".
// Код уникален (миллисекундная метка времени + криптослучайный суффикс),
// URL-safe и пригоден для передачи клиенту как идентификатор записи.
func ConfirmationCode() string {
	timestamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	return fmt.Sprintf("%s-%s-%s", confirmationPrefix, timestamp, randomBase36(confirmationSuffixLen))
}

// BlockID генерирует идентификатор блокировки слота.
// Формат не важен для отображения, поэтому используем UUID.
func BlockID() string {
	return uuid.NewString()
}

// randomBase36 возвращает криптослучайную строку из n символов base36
func randomBase36(n int) string {
	max := big.NewInt(int64(len(base36Alphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand практически не возвращает ошибок; fallback на метку времени
			b[i] = base36Alphabet[time.Now().UnixNano()%int64(len(base36Alphabet))]
			continue
		}
		b[i] = base36Alphabet[idx.Int64()]
	}
	return string(b)
}
