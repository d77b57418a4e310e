package ports

import (
	"context"

	"github.com/Sameer-09816/api/internal/models"
)

type ThreadService interface {
	Download(ctx context.Context, urlOrID string) (*models.MediaResult, error)
}
