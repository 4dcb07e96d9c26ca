package mock

import "github.com/fwojciec/storyllms"

var _ storyllms.AssetResolver = (*AssetResolver)(nil)

// AssetResolver is a mock implementation of storyllms.AssetResolver.
type AssetResolver struct {
	ResolveFn func(requestPath string) (*storyllms.Asset, error)
}

func (r *AssetResolver) Resolve(requestPath string) (*storyllms.Asset, error) {
	return r.ResolveFn(requestPath)
}
