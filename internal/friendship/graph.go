// friendship хранит симметричное отношение дружбы между пользователями
// и отвечает на запросы "друзья пользователя" и "общие друзья".
//
// Graph не потокобезопасен: синхронизацию обеспечивает владелец (хранилище).
package friendship

import (
	"errors"

	"github.com/pribylovaa/go-filmorate/internal/models"
)

// ErrSelfFriendship — пользователь не может дружить сам с собой.
var ErrSelfFriendship = errors.New("self friendship")

// Graph — неориентированный граф дружбы на множествах смежности.
type Graph struct {
	adj map[int64]models.IDSet
}

// New создаёт пустой граф.
func New() *Graph {
	return &Graph{adj: make(map[int64]models.IDSet)}
}

// Add связывает a и b в обе стороны. Повторное добавление — no-op.
func (g *Graph) Add(a, b int64) error {
	if a == b {
		return ErrSelfFriendship
	}

	g.set(a).Add(b)
	g.set(b).Add(a)

	return nil
}

// Remove разрывает связь a-b в обе стороны. Отсутствующая связь — no-op.
func (g *Graph) Remove(a, b int64) {
	if s, ok := g.adj[a]; ok {
		s.Remove(b)
	}

	if s, ok := g.adj[b]; ok {
		s.Remove(a)
	}
}

// Replace заменяет множество друзей id целиком, поддерживая симметрию:
// id удаляется у бывших друзей и добавляется новым.
func (g *Graph) Replace(id int64, friends models.IDSet) error {
	if friends.Has(id) {
		return ErrSelfFriendship
	}

	for old := range g.adj[id] {
		if !friends.Has(old) {
			g.Remove(id, old)
		}
	}

	for f := range friends {
		// id != f проверено выше.
		_ = g.Add(id, f)
	}

	return nil
}

// Has сообщает, дружат ли a и b.
func (g *Graph) Has(a, b int64) bool {
	return g.adj[a].Has(b)
}

// FriendsOf возвращает копию множества друзей id.
func (g *Graph) FriendsOf(id int64) models.IDSet {
	return g.adj[id].Clone()
}

// Common возвращает общих друзей a и b по возрастанию id.
func (g *Graph) Common(a, b int64) []int64 {
	return g.adj[a].Intersect(g.adj[b]).Sorted()
}

func (g *Graph) set(id int64) models.IDSet {
	s, ok := g.adj[id]
	if !ok {
		s = make(models.IDSet)
		g.adj[id] = s
	}

	return s
}
