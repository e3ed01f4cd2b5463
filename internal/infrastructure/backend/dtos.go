package backend

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Message string `json:"message"`
}

type createPaymentIntentRequest struct {
	Amount int64 `json:"amount"`
}

type createPaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type errorResponse struct {
	Err string `json:"error"`
}
