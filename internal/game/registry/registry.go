package registry

import "sync"

// Arena - хранилище живых сессий одного типа игры с ключом по ID
// пользователя. У пользователя не может быть больше одной живой сессии
// на тип игры: отсутствие сессии - обычный промах по ключу, удаление
// при терминальном переходе явное
type Arena[S any] struct {
	mtx      sync.RWMutex
	sessions map[int]S
}

func NewArena[S any]() *Arena[S] {
	return &Arena[S]{
		sessions: make(map[int]S),
	}
}

// Get возвращает живую сессию пользователя, если она есть
func (a *Arena[S]) Get(userID int) (S, bool) {
	a.mtx.RLock()
	defer a.mtx.RUnlock()
	s, ok := a.sessions[userID]
	return s, ok
}

// Put сохраняет сессию пользователя, заменяя существующую
func (a *Arena[S]) Put(userID int, session S) {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	a.sessions[userID] = session
}

// Remove удаляет сессию пользователя
func (a *Arena[S]) Remove(userID int) {
	a.mtx.Lock()
	defer a.mtx.Unlock()
	delete(a.sessions, userID)
}

// UserLocks - пер-пользовательская сериализация. Конкурентные действия
// одного пользователя выполняются строго по очереди (иначе два
// параллельных hit прочитают одну и ту же руку, а две ставки пройдут
// проверку по устаревшему балансу). Разные пользователи не конкурируют.
// Замок удерживается на весь цикл чтение-проверка-мутация-запись
type UserLocks struct {
	mtx   sync.Mutex
	locks map[int]*sync.Mutex
}

func NewUserLocks() *UserLocks {
	return &UserLocks{
		locks: make(map[int]*sync.Mutex),
	}
}

// Lock блокирует замок пользователя и возвращает функцию разблокировки
func (l *UserLocks) Lock(userID int) func() {
	l.mtx.Lock()
	mu, ok := l.locks[userID]
	if !ok {
		mu = &sync.Mutex{}
		l.locks[userID] = mu
	}
	l.mtx.Unlock()

	mu.Lock()
	return mu.Unlock
}
