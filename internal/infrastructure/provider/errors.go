package provider

import "fmt"

// APIError carries the provider's failure message for one endpoint call.
// It is the single error surface the rest of the service sees for bad
// tickers, provider outages, and malformed requests alike.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fundamentals API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}
