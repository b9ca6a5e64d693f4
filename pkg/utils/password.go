package utils

import "golang.org/x/crypto/bcrypt"

// bcrypt cost 12：离线爆破成本优先于登录延迟
const passwordCost = 12

func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), passwordCost)
	return string(b)
}

// CheckPassword 摘要格式非法时同样返回 false，不抛错
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
