package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewID 32 位无连字符 uuid，作各表主键
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewResetToken 256 bit 随机数 hex 编码，作密码重置令牌
func NewResetToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
