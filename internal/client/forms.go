package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Ebe-N/shopfront/internal/domain"
)

// FormsClient fetches the checkout form's reference data (countries and
// states) from the backend.
type FormsClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewFormsClient(baseURL string, httpClient *http.Client) *FormsClient {
	return &FormsClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

type countriesEnvelope struct {
	Embedded struct {
		Countries []domain.Country `json:"countries"`
	} `json:"_embedded"`
}

type statesEnvelope struct {
	Embedded struct {
		States []domain.State `json:"states"`
	} `json:"_embedded"`
}

// GetCountries lists all countries.
func (c *FormsClient) GetCountries(ctx context.Context) ([]domain.Country, error) {
	var envelope countriesEnvelope
	if err := getJSON(ctx, c.httpClient, c.baseURL+"/api/countries", &envelope); err != nil {
		return nil, err
	}
	return envelope.Embedded.Countries, nil
}

// GetStates lists the states of one country.
func (c *FormsClient) GetStates(ctx context.Context, countryCode string) ([]domain.State, error) {
	searchURL := fmt.Sprintf("%s/api/states/search/findByCountryCode?code=%s", c.baseURL, url.QueryEscape(countryCode))

	var envelope statesEnvelope
	if err := getJSON(ctx, c.httpClient, searchURL, &envelope); err != nil {
		return nil, err
	}
	return envelope.Embedded.States, nil
}
