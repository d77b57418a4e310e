package domain

import (
	"context"

	"github.com/Sameer-09816/api/internal/models"
	"github.com/Sameer-09816/api/internal/ports"
)

type ThreadService struct {
	fetcher ports.PageFetcher
}

func NewThreadService(fetcher ports.PageFetcher) *ThreadService {
	return &ThreadService{fetcher: fetcher}
}

// Download runs the full pipeline for one request:
// normalize → fetch → extract → shape response.
func (s *ThreadService) Download(ctx context.Context, urlOrID string) (*models.MediaResult, error) {
	threadID, err := ExtractThreadID(urlOrID)
	if err != nil {
		return nil, err
	}

	html, err := s.fetcher.FetchPost(ctx, threadID)
	if err != nil {
		return nil, err
	}

	media, err := extractMedia(html)
	if err != nil {
		return nil, err
	}

	return media.toResult(), nil
}
