package glossary

import (
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/termlink/internal/domain"
	"github.com/heartmarshall/termlink/internal/linker"
)

// termSourceMock is a moq-style mock of termSource.
type termSourceMock struct {
	GetFunc        func(id uuid.UUID) (domain.Term, error)
	FindByNameFunc func(name string) (domain.Term, error)
	AllFunc        func() []domain.Term
	LinkerFunc     func() *linker.Linker

	mu      sync.Mutex
	getArgs []uuid.UUID
}

func (m *termSourceMock) Get(id uuid.UUID) (domain.Term, error) {
	m.mu.Lock()
	m.getArgs = append(m.getArgs, id)
	m.mu.Unlock()
	if m.GetFunc == nil {
		panic("termSourceMock.GetFunc: method is nil but termSource.Get was just called")
	}
	return m.GetFunc(id)
}

func (m *termSourceMock) FindByName(name string) (domain.Term, error) {
	if m.FindByNameFunc == nil {
		panic("termSourceMock.FindByNameFunc: method is nil but termSource.FindByName was just called")
	}
	return m.FindByNameFunc(name)
}

func (m *termSourceMock) All() []domain.Term {
	if m.AllFunc == nil {
		panic("termSourceMock.AllFunc: method is nil but termSource.All was just called")
	}
	return m.AllFunc()
}

func (m *termSourceMock) Linker() *linker.Linker {
	if m.LinkerFunc == nil {
		panic("termSourceMock.LinkerFunc: method is nil but termSource.Linker was just called")
	}
	return m.LinkerFunc()
}

func (m *termSourceMock) GetCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]uuid.UUID(nil), m.getArgs...)
}
