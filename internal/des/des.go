// Package des はDESブロック暗号の暗号化側を実装する。
//
// ARRIS系モデムのpassword of the dayは既存ハードウェアとの互換のため
// 古典的なDES（64ビットブロック・実効56ビット鍵・16ラウンドFeistel）の
// 出力と一致する必要がある。そのため置換表・Sボックスはすべて
// 標準のものをそのまま保持する。復号は不要なので実装しない。
package des

import "encoding/binary"

// BlockSize はブロック長（バイト）。
const BlockSize = 8

// KeySize は鍵長（バイト）。パリティ8ビットは鍵スケジュールで捨てられる。
const KeySize = 8

// 初期置換 IP。
var initialPermutation = [64]byte{
	58, 50, 42, 34, 26, 18, 10, 2,
	60, 52, 44, 36, 28, 20, 12, 4,
	62, 54, 46, 38, 30, 22, 14, 6,
	64, 56, 48, 40, 32, 24, 16, 8,
	57, 49, 41, 33, 25, 17, 9, 1,
	59, 51, 43, 35, 27, 19, 11, 3,
	61, 53, 45, 37, 29, 21, 13, 5,
	63, 55, 47, 39, 31, 23, 15, 7,
}

// 最終置換 IP^-1。
var finalPermutation = [64]byte{
	40, 8, 48, 16, 56, 24, 64, 32,
	39, 7, 47, 15, 55, 23, 63, 31,
	38, 6, 46, 14, 54, 22, 62, 30,
	37, 5, 45, 13, 53, 21, 61, 29,
	36, 4, 44, 12, 52, 20, 60, 28,
	35, 3, 43, 11, 51, 19, 59, 27,
	34, 2, 42, 10, 50, 18, 58, 26,
	33, 1, 41, 9, 49, 17, 57, 25,
}

// 拡大転置 E。右半分32ビットを48ビットへ拡大する。
var expansion = [48]byte{
	32, 1, 2, 3, 4, 5,
	4, 5, 6, 7, 8, 9,
	8, 9, 10, 11, 12, 13,
	12, 13, 14, 15, 16, 17,
	16, 17, 18, 19, 20, 21,
	20, 21, 22, 23, 24, 25,
	24, 25, 26, 27, 28, 29,
	28, 29, 30, 31, 32, 1,
}

// 転置 P。Sボックス出力32ビットを並べ替える。
var pPermutation = [32]byte{
	16, 7, 20, 21, 29, 12, 28, 17,
	1, 15, 23, 26, 5, 18, 31, 10,
	2, 8, 24, 14, 32, 27, 3, 9,
	19, 13, 30, 6, 22, 11, 4, 25,
}

// 縮約転置 PC-1。64ビット鍵からパリティを除いた56ビットを取り出す。
var permutedChoice1 = [56]byte{
	57, 49, 41, 33, 25, 17, 9,
	1, 58, 50, 42, 34, 26, 18,
	10, 2, 59, 51, 43, 35, 27,
	19, 11, 3, 60, 52, 44, 36,
	63, 55, 47, 39, 31, 23, 15,
	7, 62, 54, 46, 38, 30, 22,
	14, 6, 61, 53, 45, 37, 29,
	21, 13, 5, 28, 20, 12, 4,
}

// 縮約転置 PC-2。56ビットからラウンド鍵48ビットを取り出す。
var permutedChoice2 = [48]byte{
	14, 17, 11, 24, 1, 5,
	3, 28, 15, 6, 21, 10,
	23, 19, 12, 4, 26, 8,
	16, 7, 27, 20, 13, 2,
	41, 52, 31, 37, 47, 55,
	30, 40, 51, 45, 33, 48,
	44, 49, 39, 56, 34, 53,
	46, 42, 50, 36, 29, 32,
}

// ラウンドごとの左回転量。
var rotations = [16]byte{1, 1, 2, 2, 2, 2, 2, 2, 1, 2, 2, 2, 2, 2, 2, 1}

// Sボックス。6ビット入力を4ビット出力へ写す8表。
// 行は入力の最上位・最下位ビット、列は中央4ビットで選択する。
var sboxes = [8][64]byte{
	{
		14, 4, 13, 1, 2, 15, 11, 8, 3, 10, 6, 12, 5, 9, 0, 7,
		0, 15, 7, 4, 14, 2, 13, 1, 10, 6, 12, 11, 9, 5, 3, 8,
		4, 1, 14, 8, 13, 6, 2, 11, 15, 12, 9, 7, 3, 10, 5, 0,
		15, 12, 8, 2, 4, 9, 1, 7, 5, 11, 3, 14, 10, 0, 6, 13,
	},
	{
		15, 1, 8, 14, 6, 11, 3, 4, 9, 7, 2, 13, 12, 0, 5, 10,
		3, 13, 4, 7, 15, 2, 8, 14, 12, 0, 1, 10, 6, 9, 11, 5,
		0, 14, 7, 11, 10, 4, 13, 1, 5, 8, 12, 6, 9, 3, 2, 15,
		13, 8, 10, 1, 3, 15, 4, 2, 11, 6, 7, 12, 0, 5, 14, 9,
	},
	{
		10, 0, 9, 14, 6, 3, 15, 5, 1, 13, 12, 7, 11, 4, 2, 8,
		13, 7, 0, 9, 3, 4, 6, 10, 2, 8, 5, 14, 12, 11, 15, 1,
		13, 6, 4, 9, 8, 15, 3, 0, 11, 1, 2, 12, 5, 10, 14, 7,
		1, 10, 13, 0, 6, 9, 8, 7, 4, 15, 14, 3, 11, 5, 2, 12,
	},
	{
		7, 13, 14, 3, 0, 6, 9, 10, 1, 2, 8, 5, 11, 12, 4, 15,
		13, 8, 11, 5, 6, 15, 0, 3, 4, 7, 2, 12, 1, 10, 14, 9,
		10, 6, 9, 0, 12, 11, 7, 13, 15, 1, 3, 14, 5, 2, 8, 4,
		3, 15, 0, 6, 10, 1, 13, 8, 9, 4, 5, 11, 12, 7, 2, 14,
	},
	{
		2, 12, 4, 1, 7, 10, 11, 6, 8, 5, 3, 15, 13, 0, 14, 9,
		14, 11, 2, 12, 4, 7, 13, 1, 5, 0, 15, 10, 3, 9, 8, 6,
		4, 2, 1, 11, 10, 13, 7, 8, 15, 9, 12, 5, 6, 3, 0, 14,
		11, 8, 12, 7, 1, 14, 2, 13, 6, 15, 0, 9, 10, 4, 5, 3,
	},
	{
		12, 1, 10, 15, 9, 2, 6, 8, 0, 13, 3, 4, 14, 7, 5, 11,
		10, 15, 4, 2, 7, 12, 9, 5, 6, 1, 13, 14, 0, 11, 3, 8,
		9, 14, 15, 5, 2, 8, 12, 3, 7, 0, 4, 10, 1, 13, 11, 6,
		4, 3, 2, 12, 9, 5, 15, 10, 11, 14, 1, 7, 6, 0, 8, 13,
	},
	{
		4, 11, 2, 14, 15, 0, 8, 13, 3, 12, 9, 7, 5, 10, 6, 1,
		13, 0, 11, 7, 4, 9, 1, 10, 14, 3, 5, 12, 2, 15, 8, 6,
		1, 4, 11, 13, 12, 3, 7, 14, 10, 15, 6, 8, 0, 5, 9, 2,
		6, 11, 13, 8, 1, 4, 10, 7, 9, 5, 0, 15, 14, 2, 3, 12,
	},
	{
		13, 2, 8, 4, 6, 15, 11, 1, 10, 9, 3, 14, 5, 0, 12, 7,
		1, 15, 13, 8, 10, 3, 7, 4, 12, 5, 6, 11, 0, 14, 9, 2,
		7, 11, 4, 1, 9, 12, 14, 2, 0, 6, 10, 13, 15, 3, 5, 8,
		2, 1, 14, 7, 4, 10, 8, 13, 15, 12, 9, 0, 3, 5, 6, 11,
	},
}

// Cipher は展開済みラウンド鍵を保持するDES暗号器。
type Cipher struct {
	subkeys [16]uint64
}

// NewCipher は64ビット鍵からラウンド鍵を展開した暗号器を生成する。
func NewCipher(key [KeySize]byte) *Cipher {
	c := &Cipher{}
	c.expandKey(binary.BigEndian.Uint64(key[:]))
	return c
}

// permute はblockの上位nbitsビットに対して転置表を適用する。
// 表の値は1始まりのビット位置（MSBが1）。
func permute(block uint64, nbits uint, table []byte) uint64 {
	var out uint64
	for _, pos := range table {
		out = out<<1 | (block>>(nbits-uint(pos)))&1
	}
	return out
}

// expandKey はPC-1で56ビットへ縮約した鍵を28ビットずつに分割し、
// ラウンドごとの左回転とPC-2で16個の48ビットラウンド鍵を生成する。
func (c *Cipher) expandKey(key uint64) {
	k56 := permute(key, 64, permutedChoice1[:])
	left := uint32(k56>>28) & 0x0fffffff
	right := uint32(k56) & 0x0fffffff
	for i, rot := range rotations {
		left = (left<<rot | left>>(28-rot)) & 0x0fffffff
		right = (right<<rot | right>>(28-rot)) & 0x0fffffff
		c.subkeys[i] = permute(uint64(left)<<28|uint64(right), 56, permutedChoice2[:])
	}
}

// feistel は1ラウンド分のF関数。右半分を48ビットへ拡大して
// ラウンド鍵とXORし、Sボックス置換と転置Pを通す。
func feistel(right uint32, subkey uint64) uint32 {
	x := permute(uint64(right), 32, expansion[:]) ^ subkey
	var out uint32
	for i := 0; i < 8; i++ {
		six := byte(x>>(42-6*i)) & 0x3f
		row := (six>>4)&0x2 | six&0x1
		col := (six >> 1) & 0xf
		out = out<<4 | uint32(sboxes[i][row*16+col])
	}
	return uint32(permute(uint64(out), 32, pPermutation[:]))
}

// EncryptBlock は1ブロックをECB相当の単独モードで暗号化する。
// 同一の(鍵, 平文)は常に同一の暗号文を返し、失敗経路を持たない。
func (c *Cipher) EncryptBlock(plaintext [BlockSize]byte) [BlockSize]byte {
	block := permute(binary.BigEndian.Uint64(plaintext[:]), 64, initialPermutation[:])
	left := uint32(block >> 32)
	right := uint32(block)
	for i := 0; i < 16; i++ {
		left, right = right, left^feistel(right, c.subkeys[i])
	}
	// 最終ラウンドは半分を入れ替えない
	out := permute(uint64(right)<<32|uint64(left), 64, finalPermutation[:])

	var ciphertext [BlockSize]byte
	binary.BigEndian.PutUint64(ciphertext[:], out)
	return ciphertext
}
