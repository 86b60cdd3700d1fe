package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/termindesk/appointment-service/internal/api/handlers"
)

// HeaderEmployeeToken заголовок с токеном сотрудника
const HeaderEmployeeToken = "X-Employee-Token"

const msgMissingToken = "отсутствует или неверный токен сотрудника"

// EmployeeAuth проверяет токен сотрудника в заголовке X-Employee-Token.
// Сравнение выполняется за константное время.
func EmployeeAuth(token string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(HeaderEmployeeToken)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
