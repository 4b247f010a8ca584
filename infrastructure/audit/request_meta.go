package audit

import (
	"context"

	"youtube-companion/domain/model"
)

type requestMetaKey struct{}

// WithRequestMeta attaches the caller's request metadata to ctx.
func WithRequestMeta(ctx context.Context, meta model.RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// RequestMetaFrom returns the zero value when no metadata was attached.
func RequestMetaFrom(ctx context.Context) model.RequestMeta {
	if ctx == nil {
		return model.RequestMeta{}
	}
	meta, _ := ctx.Value(requestMetaKey{}).(model.RequestMeta)
	return meta
}
