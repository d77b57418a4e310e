package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/Sameer-09816/api/internal/domain"
	"github.com/Sameer-09816/api/internal/ports"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

const (
	defaultBaseURL      = "https://threadster.app"
	defaultTimeout      = 10 * time.Second
	defaultRetryWaitMin = 4 * time.Second
	defaultRetryWaitMax = 10 * time.Second

	// retries after the first attempt, three attempts total
	retryCount = 2
)

type ThreadsterOptions struct {
	BaseURL      string
	Timeout      time.Duration
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// ThreadsterClient fetches the rendered download page for a thread from
// threadster.app. The markup it returns is parsed by the domain layer.
type ThreadsterClient struct {
	client *resty.Client
	log    *zap.Logger
}

func NewThreadsterClient(opts ThreadsterOptions, log *zap.Logger) ports.PageFetcher {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.RetryWaitMin == 0 {
		opts.RetryWaitMin = defaultRetryWaitMin
	}
	if opts.RetryWaitMax == 0 {
		opts.RetryWaitMax = defaultRetryWaitMax
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseURL)
	client.SetHeader("User-Agent", userAgent)
	client.SetTimeout(opts.Timeout)
	client.SetRetryCount(retryCount)
	client.SetRetryAfter(backoffSchedule(opts.RetryWaitMin, opts.RetryWaitMax))
	client.AddRetryCondition(func(resp *resty.Response, err error) bool {
		return err != nil || resp.IsError()
	})

	return &ThreadsterClient{
		client: client,
		log:    log,
	}
}

// backoffSchedule doubles a one-second base per attempt and clamps the
// wait between min and max.
func backoffSchedule(min, max time.Duration) resty.RetryAfterFunc {
	return func(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
		wait := time.Second << uint(resp.Request.Attempt)
		if wait < min {
			wait = min
		}
		if wait > max {
			wait = max
		}
		return wait, nil
	}
}

func (c *ThreadsterClient) FetchPost(ctx context.Context, threadID string) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/download/" + threadID)
	if err != nil {
		c.log.Error("threadster request failed",
			zap.String("thread_id", threadID),
			zap.Error(err),
		)
		return "", fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	if resp.IsError() {
		c.log.Error("threadster returned error status",
			zap.String("thread_id", threadID),
			zap.Int("status", resp.StatusCode()),
		)
		return "", fmt.Errorf("%w: http %d", domain.ErrUpstreamUnavailable, resp.StatusCode())
	}

	return resp.String(), nil
}
