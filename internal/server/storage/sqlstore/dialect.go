// Package sqlstore реализует storage.Storage поверх database/sql.
// Различия между SQLite и PostgreSQL вынесены в Dialect.
package sqlstore

import (
	"database/sql"
	"strconv"
	"strings"
)

// Dialect описывает особенности конкретной СУБД
type Dialect struct {
	// IsUniqueViolation распознает нарушение PRIMARY KEY/UNIQUE
	IsUniqueViolation func(err error) bool
	// IsVersionViolation распознает срабатывание триггера версии документа
	IsVersionViolation func(err error) bool
	// IsRetryable распознает ошибки, после которых транзакцию можно повторить
	IsRetryable func(err error) bool
	// TxOptions уровень изоляции транзакции ledger
	TxOptions *sql.TxOptions
	Name      string
	// MaxTxRetries количество повторов транзакции ledger
	MaxTxRetries int
	// Numbered - плейсхолдеры вида $1, $2 вместо ?
	Numbered bool
}

// Rebind переписывает запрос с ? под плейсхолдеры диалекта
func (d Dialect) Rebind(query string) string {
	if !d.Numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

func never(error) bool { return false }

func (d Dialect) withDefaults() Dialect {
	if d.IsUniqueViolation == nil {
		d.IsUniqueViolation = never
	}
	if d.IsVersionViolation == nil {
		d.IsVersionViolation = never
	}
	if d.IsRetryable == nil {
		d.IsRetryable = never
	}
	if d.MaxTxRetries < 1 {
		d.MaxTxRetries = 1
	}
	return d
}
