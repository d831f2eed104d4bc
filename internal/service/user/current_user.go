package user

import (
	"context"

	"github.com/fpvlvr/esclavizador/internal/domain"
)

// CurrentUser returns the authenticated principal.
func (s *Service) CurrentUser(ctx context.Context) (*domain.User, error) {
	return principal(ctx)
}
