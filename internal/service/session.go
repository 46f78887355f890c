package service

// Session 请求级会话身份，由鉴权中间件解析后显式传入各服务。
// 匿名会话的 UserID 为 0。
type Session struct {
	UserID uint
	Email  string
	Locale string
}

// AnonymousSession 匿名会话
func AnonymousSession() Session {
	return Session{}
}

// Authenticated 是否已登录
func (s Session) Authenticated() bool {
	return s.UserID != 0
}

func requireSession(s Session) error {
	if !s.Authenticated() {
		return ErrAuthRequired
	}
	return nil
}
