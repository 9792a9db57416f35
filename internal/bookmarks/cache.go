package bookmarks

import "context"

// URLCache maps short codes to target urls for the redirect path.
// Implementations must be safe for concurrent use.
type URLCache interface {
	Get(ctx context.Context, code string) (url string, ok bool, err error)
	Set(ctx context.Context, code, url string) error
	Delete(ctx context.Context, code string) error
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (noopCache) Set(context.Context, string, string) error         { return nil }
func (noopCache) Delete(context.Context, string) error              { return nil }
