package rest

import (
	"errors"
	"net/http"
	"strconv"
)

// StatusError - не-2xx ответ коллаборатора. Транспортные ошибки
// (таймаут, обрыв соединения) приходят как есть, без обёртки.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return "unexpected status code: " + strconv.Itoa(e.Code)
}

// IsRetryable: транспортные ошибки и 429/5xx ретраятся, прикладные
// статусы (4xx) - нет.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code == http.StatusTooManyRequests || statusErr.Code >= http.StatusInternalServerError
	}

	return true
}

func StatusLabel(err error) string {
	if err == nil {
		return "OK"
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.Code)
	}

	return "transport_error"
}
