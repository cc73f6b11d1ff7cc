package kvstore

import "context"

type prefixed struct {
	backend Backend
	prefix  string
}

// WithPrefix scopes every key of backend under prefix so that several
// dashboard instances can share one backend. A nil backend stays nil.
func WithPrefix(backend Backend, prefix string) Backend {
	if backend == nil {
		return nil
	}

	return &prefixed{backend: backend, prefix: prefix}
}

func (p *prefixed) Get(ctx context.Context, key string) (string, error) {
	return p.backend.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key, value string) error {
	return p.backend.Set(ctx, p.prefix+key, value)
}

func (p *prefixed) Delete(ctx context.Context, key string) error {
	return p.backend.Delete(ctx, p.prefix+key)
}
