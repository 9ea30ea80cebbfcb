package slackapi

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy описывает повтор сетевой операции: сколько всего попыток
// и какие паузы между ними. Пауза растёт экспоненциально от InitialInterval
// с удвоением и упирается в MaxInterval; перед первой попыткой паузы нет.
type RetryPolicy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryPolicy — политика, применяемая к загрузке файла
// и проверке соединения: 3 попытки, паузы 2с → 4с, потолок 10с.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     3,
		InitialInterval: 2 * time.Second,
		MaxInterval:     10 * time.Second,
	}
}

// schedule собирает расписание пауз без джиттера,
// чтобы задержки были воспроизводимы.
func (p RetryPolicy) schedule() *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.InitialInterval
	bo.MaxInterval = p.MaxInterval
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0
	bo.Reset()
	return bo
}

// Do выполняет op, повторяя только временные сбои бэкенда.
// После исчерпания попыток возвращается исходная ошибка операции.
func (p RetryPolicy) Do(op func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	wrapped := func() error {
		err := op()
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	return backoff.Retry(wrapped, backoff.WithMaxRetries(p.schedule(), uint64(attempts-1)))
}
