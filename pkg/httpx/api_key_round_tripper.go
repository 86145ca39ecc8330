package httpx

import (
	"fmt"
	"net/http"
)

// APIKeyRoundTripper добавляет статичный API-ключ в заголовок каждого
// исходящего запроса. Пустой ключ не добавляется.
type APIKeyRoundTripper struct {
	next       http.RoundTripper
	headerName string
	apiKey     string
}

func NewAPIKeyRoundTripper(
	next http.RoundTripper,
	headerName string,
	apiKey string,
) APIKeyRoundTripper {
	return APIKeyRoundTripper{
		next:       next,
		headerName: headerName,
		apiKey:     apiKey,
	}
}

func (rt APIKeyRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if rt.apiKey != "" {
		req.Header.Set(rt.headerName, rt.apiKey)
	}

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
