package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinCost     = bcrypt.MinCost
	DefaultCost = bcrypt.DefaultCost
)

// Hasher 使用 bcrypt 雜湊密碼
type Hasher struct {
	cost int
}

// NewHasher 建立 Hasher，cost 超出 bcrypt 範圍時使用 DefaultCost
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash 產生密碼雜湊
func (h *Hasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify 比對密碼
//
// 回傳:
//
//	bool: 密碼是否正確
//	error: 雜湊格式錯誤等非比對失敗的錯誤
func (h *Hasher) Verify(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
