package types

// SuccessEnvelope wraps every 2xx JSON body the gateway returns. The
// storefront client unwraps "data" unconditionally, so even list
// endpoints with empty results carry it.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the client-facing error shape. Code is one of the
// pkg/errors codes; Details only appears for validation failures.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
