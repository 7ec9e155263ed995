package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const credentialsFileName = "credentials.json"

var _ Store = (*FileStore)(nil)

// FileStore persists the session as a JSON file under a data folder, the
// console analogue of browser local storage. Every read loads the file so a
// store cleared by another process is observed on the next access.
type FileStore struct {
	path string
	lock sync.Mutex
}

// NewFileStore creates a FileStore rooted at dataFolder, creating the folder
// if it does not exist yet.
func NewFileStore(dataFolder string) (*FileStore, error) {
	if dataFolder == "" {
		return nil, errors.New("[NewFileStore] data folder is required")
	}
	if err := os.MkdirAll(dataFolder, 0o700); err != nil {
		return nil, fmt.Errorf("[NewFileStore] create data folder: %w", err)
	}
	return &FileStore{path: filepath.Join(dataFolder, credentialsFileName)}, nil
}

func (f *FileStore) load() Session {
	var s Session
	data, err := os.ReadFile(f.path)
	if err != nil {
		return s
	}
	// A corrupt file reads as an anonymous session rather than an error.
	_ = json.Unmarshal(data, &s)
	return s
}

func (f *FileStore) write(s Session) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("write credentials file: %w", err)
	}
	return nil
}

func (f *FileStore) Save(accessToken, refreshToken string, user *User) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.write(Session{AccessToken: accessToken, RefreshToken: refreshToken, User: user})
}

func (f *FileStore) SetAccessToken(accessToken string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	s := f.load()
	s.AccessToken = accessToken
	return f.write(s)
}

func (f *FileStore) AccessToken() string {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.load().AccessToken
}

func (f *FileStore) RefreshToken() string {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.load().RefreshToken
}

func (f *FileStore) User() *User {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.load().User
}

func (f *FileStore) Clear() error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove credentials file: %w", err)
	}
	return nil
}
