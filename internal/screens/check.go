package screens

import (
	"context"

	"github.com/omdehgostar/portal/internal/api"
	"github.com/omdehgostar/portal/internal/model"
)

// CheckScreen is the check-detail view; the attached image id resolves to a
// viewable URL against the file base.
type CheckScreen struct {
	client *api.Client

	Check    model.Check
	ImageURL string
}

func NewCheckScreen(client *api.Client) *CheckScreen {
	return &CheckScreen{client: client}
}

func (s *CheckScreen) Load(ctx context.Context, checkID int) error {
	check, err := s.client.Checks.Get(ctx, checkID)
	if err != nil {
		return err
	}
	s.Check = check
	s.ImageURL = ""
	if check.ImageID != nil {
		s.ImageURL = s.client.Files.URL(*check.ImageID)
	}
	return nil
}
