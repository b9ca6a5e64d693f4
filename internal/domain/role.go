package domain

// Role 闭合枚举，只有两档；非法字符串在入口处就被拦下
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

func (r Role) Valid() bool { _, ok := ParseRole(string(r)); return ok }

// Allows 角色是否满足要求；admin 覆盖 user
func (r Role) Allows(required Role) bool {
	if required == RoleAdmin {
		return r == RoleAdmin
	}
	return r.Valid()
}
