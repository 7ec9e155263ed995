package storefakes

import (
	"sync"

	"github.com/jrsteele09/go-hr-console/session"
)

var _ session.Store = (*FakeStore)(nil)

// FakeStore is an in-memory session.Store for tests.
type FakeStore struct {
	lock sync.RWMutex
	s    session.Session

	SaveCalls  int
	ClearCalls int
}

func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

func (f *FakeStore) Save(accessToken, refreshToken string, user *session.User) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.SaveCalls++
	f.s = session.Session{AccessToken: accessToken, RefreshToken: refreshToken, User: user}
	return nil
}

func (f *FakeStore) SetAccessToken(accessToken string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.s.AccessToken = accessToken
	return nil
}

func (f *FakeStore) AccessToken() string {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return f.s.AccessToken
}

func (f *FakeStore) RefreshToken() string {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return f.s.RefreshToken
}

func (f *FakeStore) User() *session.User {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return f.s.User
}

func (f *FakeStore) Clear() error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.ClearCalls++
	f.s = session.Session{}
	return nil
}
