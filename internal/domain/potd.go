// Package domain はドメインモデルとビジネスルールを定義する。
package domain

import (
	"fmt"
	"time"
)

// CalendarDate は検証済みのグレゴリオ暦の日付を表す。
// ParseDate以外から構築した場合の妥当性は呼び出し側の責任。
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// String は日付をYYYY-MM-DD形式で返す。
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Next は翌日の日付を返す。月末・年末・うるう年を考慮する。
func (d CalendarDate) Next() CalendarDate {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// After はdがotherより後の日付かどうかを返す。
func (d CalendarDate) After(other CalendarDate) bool {
	if d.Year != other.Year {
		return d.Year > other.Year
	}
	if d.Month != other.Month {
		return d.Month > other.Month
	}
	return d.Day > other.Day
}

// DaysUntil はdからotherまでの日数を返す（other >= d を前提とする）。
func (d CalendarDate) DaysUntil(other CalendarDate) int {
	a := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	b := time.Date(other.Year, other.Month, other.Day, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// PasswordEntry は1日分の日付とパスワードの組を表す。
// 範囲生成の結果は時系列順のPasswordEntryスライスとして返す。
type PasswordEntry struct {
	Date     string `json:"date"`
	Password string `json:"password"`
}
