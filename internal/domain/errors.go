package domain

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid thread url or id")
	ErrContentNotFound     = errors.New("content not found")
	ErrNoDownloadableItems = errors.New("no downloadable content found")
	ErrNoDownloadLinks     = errors.New("no download links available")
	ErrUpstreamUnavailable = errors.New("upstream fetch failed")
)
