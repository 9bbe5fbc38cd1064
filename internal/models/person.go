package models

import (
	"strings"
	"time"
)

// Person — доменная модель пользователя.
// Friends — множество id друзей; дружба симметрична и без петель.
type Person struct {
	Identity
	Login    string
	Name     string
	Email    string
	Birthday time.Time
	Friends  IDSet
}

// DisplayName возвращает имя для отображения: Name, либо Login, если имя пустое.
func (p *Person) DisplayName() string {
	if strings.TrimSpace(p.Name) == "" {
		return p.Login
	}

	return p.Name
}

// Clone возвращает глубокую копию пользователя.
func (p *Person) Clone() *Person {
	out := *p
	out.Friends = p.Friends.Clone()

	return &out
}
