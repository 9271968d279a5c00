package types

type SuccessEnvelope struct {
	Data any `json:"data"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// WebhookReceipt is the synchronous acknowledgment returned to the webhook
// sender. Delivery failures toward Teams are reported here, never as an HTTP
// error, so the sender does not retry-storm on downstream outages.
type WebhookReceipt struct {
	Received   bool   `json:"received"`
	Forwarded  bool   `json:"forwarded"`
	Duplicate  bool   `json:"duplicate,omitempty"`
	DeliveryID string `json:"delivery_id,omitempty"`
	Error      string `json:"error,omitempty"`
}
