// Package potd はARRIS/Commscope互換のpassword of the day生成エンジンを実装する。
//
// パスワードは (シード, 日付) の純粋関数として決定的に導出する:
// シードからDES鍵を導出し、日付から作った64ビット平文ブロックを
// 暗号化して、その暗号文を固定アルファベットの8文字へ符号化する。
// 鍵導出規則・日付の詰め方・アルファベットは互換契約の一部であり、
// 変更するとすべての生成結果が変わる。詳細はDESIGN.mdを参照。
package potd

import (
	"encoding/hex"
	"fmt"
	"time"

	"potd-service/internal/des"
	"potd-service/internal/domain"
)

const (
	// DefaultSeed はシード未指定時に使う既定のシード。
	DefaultSeed = "MPSJKMDH"

	// PasswordLength は生成されるパスワードの固定長。
	PasswordLength = des.BlockSize

	minSeedLength = 4
	maxSeedLength = 8

	// 日付エンコーダが受け付ける年の範囲。
	minYear = 1970
	maxYear = 2099

	dateLayout = "2006-01-02"
)

// alphabet はパスワード符号化に使う固定アルファベット。
// 読み間違えやすい 0, 1, O, I, l, o を除いた56文字。
const alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz"

// ValidateSeed はシードが4〜8文字の印字可能ASCIIであることを検証する。
func ValidateSeed(seed string) error {
	if len(seed) < minSeedLength || len(seed) > maxSeedLength {
		return fmt.Errorf("%w: length must be %d-%d characters, got %d",
			domain.ErrInvalidSeed, minSeedLength, maxSeedLength, len(seed))
	}
	for i := 0; i < len(seed); i++ {
		if seed[i] < 0x20 || seed[i] > 0x7e {
			return fmt.Errorf("%w: non-printable character at position %d",
				domain.ErrInvalidSeed, i)
		}
	}
	return nil
}

// deriveKey はシードのバイト列を巡回反復して8バイトのDES鍵素材へ展開する。
// key[i] = seed[i mod len(seed)]。ゼロ詰めはせず、8文字超は拒否する。
func deriveKey(seed string) ([des.KeySize]byte, error) {
	var key [des.KeySize]byte
	if err := ValidateSeed(seed); err != nil {
		return key, err
	}
	for i := 0; i < des.KeySize; i++ {
		key[i] = seed[i%len(seed)]
	}
	return key, nil
}

// SeedToDES は導出した8バイト鍵の16進表現を返す。
// 診断・表示専用で、以降の計算には使わない。
func SeedToDES(seed string) (string, error) {
	key, err := deriveKey(seed)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key[:]), nil
}

// parseDate はYYYY-MM-DD形式の文字列を厳密に検証して日付へ変換する。
// 存在しない日付（2023-02-30等）や範囲外の年は拒否し、丸めは行わない。
func parseDate(s string) (domain.CalendarDate, error) {
	if len(s) != len(dateLayout) {
		return domain.CalendarDate{}, fmt.Errorf("%w: %q is not in YYYY-MM-DD format",
			domain.ErrInvalidDate, s)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return domain.CalendarDate{}, fmt.Errorf("%w: %q is not a valid calendar date",
			domain.ErrInvalidDate, s)
	}
	if t.Year() < minYear || t.Year() > maxYear {
		return domain.CalendarDate{}, fmt.Errorf("%w: year of %q must be %d-%d",
			domain.ErrInvalidDate, s, minYear, maxYear)
	}
	return domain.CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// encodeDate は日付を64ビット平文ブロックへ詰める。
// MMDDYYYY（月・日はゼロ詰め2桁、年は4桁）のASCII 8バイト。
// 対応範囲内の相異なる日付は相異なるブロックになる。
func encodeDate(d domain.CalendarDate) [des.BlockSize]byte {
	var block [des.BlockSize]byte
	copy(block[:], fmt.Sprintf("%02d%02d%04d", int(d.Month), d.Day, d.Year))
	return block
}

// encodePassword は暗号文ブロックの各バイトを剰余でアルファベットへ
// 写して8文字のパスワードにする。バイト順は保持する。
func encodePassword(block [des.BlockSize]byte) string {
	out := make([]byte, PasswordLength)
	for i, b := range block {
		out[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(out)
}

// Generate は1つの(日付, シード)に対するパスワードを生成する。
// シードの検証を日付より先に行う。純粋関数で副作用はない。
func Generate(dateStr, seed string) (string, error) {
	key, err := deriveKey(seed)
	if err != nil {
		return "", err
	}
	date, err := parseDate(dateStr)
	if err != nil {
		return "", err
	}
	cipher := des.NewCipher(key)
	return encodePassword(cipher.EncryptBlock(encodeDate(date))), nil
}

// GenerateRange は[start, end]の各日のパスワードを時系列順に生成する。
// シードの検証と両端の日付検証を先に済ませ、途中の日は再検証しない
// （妥当な両端に挟まれた日付は常に妥当なため）。
func GenerateRange(startStr, endStr, seed string) ([]domain.PasswordEntry, error) {
	key, err := deriveKey(seed)
	if err != nil {
		return nil, err
	}
	start, err := parseDate(startStr)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(endStr)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, fmt.Errorf("%w: start %s is after end %s",
			domain.ErrInvalidDateRange, start, end)
	}

	cipher := des.NewCipher(key)
	entries := make([]domain.PasswordEntry, 0, start.DaysUntil(end)+1)
	for d := start; !d.After(end); d = d.Next() {
		entries = append(entries, domain.PasswordEntry{
			Date:     d.String(),
			Password: encodePassword(cipher.EncryptBlock(encodeDate(d))),
		})
	}
	return entries, nil
}
