package session

// MemStore keeps the session in memory. Used in tests and anywhere a
// persistent session is unwanted.
type MemStore struct {
	access  string
	refresh string
	ip      string
	flags   map[string]bool
}

func NewMemStore() *MemStore {
	return &MemStore{flags: map[string]bool{}}
}

func (s *MemStore) AccessToken() string  { return s.access }
func (s *MemStore) RefreshToken() string { return s.refresh }
func (s *MemStore) ClientIP() string     { return s.ip }

func (s *MemStore) SetAccessToken(token string) error {
	s.access = token
	return nil
}

func (s *MemStore) SetTokens(access, refresh string) error {
	s.access = access
	s.refresh = refresh
	return nil
}

func (s *MemStore) Clear() error {
	s.access = ""
	s.refresh = ""
	return nil
}

func (s *MemStore) SetClientIP(ip string) error {
	s.ip = ip
	return nil
}

func (s *MemStore) SetFlag(name string) error {
	s.flags[name] = true
	return nil
}

func (s *MemStore) TakeFlag(name string) (bool, error) {
	ok := s.flags[name]
	delete(s.flags, name)
	return ok, nil
}
