package fetcher

import (
	"context"

	"github.com/cavaliercoder/grab"
)

// getter saves the resource at url into the local file dst.
type getter interface {
	Get(ctx context.Context, url, dst string) (int64, error)
}

type grabGetter struct {
	client *grab.Client
}

func newGrabGetter(userAgent string) *grabGetter {
	client := grab.NewClient()
	if userAgent != "" {
		client.UserAgent = userAgent
	}
	return &grabGetter{client: client}
}

// Get fails on transport errors and on any non-2xx status.
func (g *grabGetter) Get(ctx context.Context, url, dst string) (int64, error) {
	req, err := grab.NewRequest(dst, url)
	if err != nil {
		return 0, err
	}
	req.NoResume = true

	resp := g.client.Do(req.WithContext(ctx))
	if err := resp.Err(); err != nil {
		return 0, err
	}
	return resp.BytesComplete(), nil
}
