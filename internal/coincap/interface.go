package coincap

import "context"

//go:generate mockgen -source=interface.go -destination=mock_interface.go -package=coincap

type AssetClient interface {
	GetAssets(ctx context.Context) (*AssetsResponse, error)
}
