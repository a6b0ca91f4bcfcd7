package chain

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/secretswap/router/domain"
	"github.com/secretswap/router/swaputil/swaphttp"
)

var _ domain.ContractQuerier = &Client{}

// Client queries smart contracts through the chain's LCD gateway.
// Every call is a single-shot round-trip: no retry, no backoff.
type Client struct {
	lcdEndpoint string
	httpClient  *http.Client
}

// NewClient returns an LCD-backed contract querier.
func NewClient(lcdEndpoint string) *Client {
	return &Client{
		lcdEndpoint: lcdEndpoint,
		httpClient:  &http.Client{},
	}
}

// smartQueryResponse is the LCD envelope around a contract query result.
type smartQueryResponse struct {
	Data json.RawMessage `json:"data"`
}

// QuerySmartContract implements domain.ContractQuerier.
// The code hash authenticates the contract for encrypting transports;
// the plain JSON gateway does not consume it.
func (c *Client) QuerySmartContract(ctx context.Context, contractAddr, codeHash string, req, resp any) error {
	bz, err := json.Marshal(req)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf(
		"/compute/v1beta1/query/%s?query=%s",
		contractAddr,
		url.QueryEscape(base64.StdEncoding.EncodeToString(bz)),
	)

	queryResponse, err := swaphttp.Get[smartQueryResponse](ctx, c.httpClient, c.lcdEndpoint, endpoint)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(queryResponse.Data, resp); err != nil {
		return err
	}

	return nil
}
