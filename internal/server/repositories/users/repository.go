package users

import (
	"context"

	"github.com/dmitrijs2005/studentteacher/internal/server/models"
)

// Repository is the account store. Insert takes an already hashed password;
// lookups and UpdatePassword take plaintext and hash or verify it themselves.
type Repository interface {
	// FindByEmailAndPassword returns nil, nil when no account matches.
	FindByEmailAndPassword(ctx context.Context, email, password string) (*models.User, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id, password string) error
}
