package domain

import "errors"

var (
	// ErrInvalidSeed はシードが4〜8文字の印字可能ASCIIでない場合のエラー。
	ErrInvalidSeed = errors.New("invalid seed")

	// ErrInvalidDate は日付文字列が不正、または暦上存在しない日付の場合のエラー。
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidDateRange は開始日が終了日より後の場合のエラー。
	ErrInvalidDateRange = errors.New("invalid date range")
)
