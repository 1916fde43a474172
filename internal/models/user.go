package models

// User представляет пользователя, под которым открыта сессия клиента
type User struct {
	ID        string `json:"id"`                   // идентификатор пользователя на сервере
	Name      string `json:"name"`                 // отображаемое имя
	Email     string `json:"email"`                // e-mail, он же логин
	AvatarURL string `json:"avatar_url,omitempty"` // ссылка на аватар (может отсутствовать)
}

// Valid проверяет, что запись пригодна для восстановления сессии
func (u *User) Valid() bool {
	return u != nil && u.ID != ""
}

// Session is the pair of authenticated user and bearer token.
// Both fields are set or both are empty.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Authenticated reports whether the session holds a user and a token.
func (s Session) Authenticated() bool {
	return s.User.Valid() && s.Token != ""
}
