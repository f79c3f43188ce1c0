package user

import (
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	Setting      Setting   `json:"setting"`
}

type Role string

const RoleUser Role = "user"
const RoleAdmin Role = "admin"

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

type Language string
type Theme string

const LanguageFR Language = "fr"
const LanguageEN Language = "en"
const LanguageES Language = "es"
const LanguageDE Language = "de"

const ThemeLight Theme = "light"
const ThemeDark Theme = "dark"

func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case LanguageFR, LanguageEN, LanguageES, LanguageDE:
		return Language(s), true
	}
	return "", false
}

func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), true
	}
	return "", false
}

type Setting struct {
	Language Language `json:"language" db:"language"`
	Theme    Theme    `json:"theme" db:"theme"`
}

// настройки по умолчанию для нового пользователя
func DefaultSetting() Setting {
	return Setting{
		Language: LanguageFR,
		Theme:    ThemeLight,
	}
}
