package interfaces

import "net/http"

// HTTPHandler is the transport-facing surface of the application.
type HTTPHandler interface {
	http.Handler
}
