package session

import (
	"encoding/json"
	"github.com/google/uuid"
	"github.com/ivanpodgorny/lieferspatz/internal/entity"
	inerr "github.com/ivanpodgorny/lieferspatz/internal/errors"
	"os"
	"sync"
)

const tabSessionKey = "tab_session_id"

// Storage временное хранилище вкладки, живущее не дольше самой вкладки.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// Session контекст клиентской сессии: идентификатор вкладки и начальное
// состояние страницы. Создается через Open при загрузке страницы и закрывается
// при уходе с нее.
type Session struct {
	storage Storage
	state   entity.InitialState
	tabID   string
	closed  bool
	mu      sync.RWMutex
}

// Open создает сессию. Идентификатор вкладки берется из хранилища, а если его
// там нет, генерируется и сохраняется.
func Open(s Storage, state entity.InitialState) *Session {
	tabID, ok := s.Get(tabSessionKey)
	if !ok || tabID == "" {
		tabID = uuid.NewString()
		s.Set(tabSessionKey, tabID)
	}

	return &Session{
		storage: s,
		state:   state,
		tabID:   tabID,
	}
}

func (s *Session) TabSessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tabID
}

func (s *Session) UserID() int {
	return s.state.UserID
}

func (s *Session) RestaurantID() int {
	return s.state.RestaurantID
}

// Close завершает сессию при навигации. Идентификатор вкладки остается в
// хранилище, как и в браузере при переходе между страницами одной вкладки.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return inerr.ErrSessionClosed
	}
	s.closed = true

	return nil
}

// Forget удаляет идентификатор вкладки, как при закрытии самой вкладки.
func (s *Session) Forget() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.storage.Delete(tabSessionKey)
	s.tabID = ""
}

// LoadInitialState читает начальное состояние страницы из JSON-файла.
// Пустой путь означает пустое состояние.
func LoadInitialState(path string) (entity.InitialState, error) {
	state := entity.InitialState{}
	if path == "" {
		return state, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return state, err
	}

	err = json.Unmarshal(b, &state)

	return state, err
}
