package gateway

import (
	"context"
	"net/http"
	"net/url"

	"vitta-booking/internal/infra"
	"vitta-booking/internal/infra/converter"
	resdto "vitta-booking/internal/infra/dto/response"
	"vitta-booking/internal/usecase"
	"vitta-booking/internal/usecase/readmodel"
)

type providerDirectory struct {
	client *Client
}

func NewProviderDirectory(client *Client) usecase.ProviderDirectory {
	return &providerDirectory{client: client}
}

func (d *providerDirectory) ProviderByID(ctx context.Context, id string) (*readmodel.ProviderRM, error) {
	var res resdto.ProviderResponse
	if err := d.client.do(ctx, call{method: http.MethodGet, path: "/providers/" + url.PathEscape(id)}, &res); err != nil {
		return nil, err
	}

	provider, err := converter.ProviderToReadModel(res)
	if err != nil {
		return nil, infra.WrapGatewayErr(d.client.logger, infra.KindDecode, http.StatusOK, "invalid provider", err)
	}
	return provider, nil
}
