package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists the session as a JSON file, mode 0600. Every mutation
// writes through so a crashed command never loses a token refresh.
type FileStore struct {
	path string
	data fileData
}

type fileData struct {
	AccessToken  string          `json:"accessToken,omitempty"`
	RefreshToken string          `json:"refreshToken,omitempty"`
	ClientIP     string          `json:"clientIp,omitempty"`
	Flags        map[string]bool `json:"flags,omitempty"`
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		// A corrupt session file is equivalent to a logged-out state.
		s.data = fileData{}
	}
	return s, nil
}

// DefaultPath places the session under the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".omdeh-portal", "session.json"), nil
}

func (s *FileStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(s.data)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

func (s *FileStore) AccessToken() string  { return s.data.AccessToken }
func (s *FileStore) RefreshToken() string { return s.data.RefreshToken }
func (s *FileStore) ClientIP() string     { return s.data.ClientIP }

func (s *FileStore) SetAccessToken(token string) error {
	s.data.AccessToken = token
	return s.save()
}

func (s *FileStore) SetTokens(access, refresh string) error {
	s.data.AccessToken = access
	s.data.RefreshToken = refresh
	return s.save()
}

func (s *FileStore) Clear() error {
	s.data.AccessToken = ""
	s.data.RefreshToken = ""
	return s.save()
}

func (s *FileStore) SetClientIP(ip string) error {
	s.data.ClientIP = ip
	return s.save()
}

func (s *FileStore) SetFlag(name string) error {
	if s.data.Flags == nil {
		s.data.Flags = map[string]bool{}
	}
	s.data.Flags[name] = true
	return s.save()
}

func (s *FileStore) TakeFlag(name string) (bool, error) {
	if !s.data.Flags[name] {
		return false, nil
	}
	delete(s.data.Flags, name)
	return true, s.save()
}
