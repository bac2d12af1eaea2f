package request

type ToggleServiceRequest struct {
	DeviceID    string `json:"device_id" binding:"required"`
	DeviceModel string `json:"device_model,omitempty"`
	ServiceID   string `json:"service_id" binding:"required"`
}

type RequestQuoteRequest struct {
	DeviceModel string `json:"device_model,omitempty"`
}
