package create_appointment

import (
	"time"

	"github.com/termindesk/appointment-service/pkg/types"
)

// Request модель запроса на создание записи.
// Субъект задается либо контактными данными (Name + Email, опционально
// Phone), либо секретным кодом SecretCode - допустимы оба варианта сразу.
type Request struct {
	Date       string           // Дата в формате YYYY-MM-DD
	Time       types.TimeString // Метка слота, HH:MM
	Name       string
	Email      string
	Phone      *string
	SecretCode string
}

// Response модель ответа с созданной записью
type Response struct {
	ID         string           // Код подтверждения (и идентификатор записи)
	Date       string
	Time       types.TimeString
	Name       string
	Email      string
	Phone      *string
	SecretCode string
	CreatedAt  time.Time
}
