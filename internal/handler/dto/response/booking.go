package response

import "repair-storefront/internal/usecase/commands"

type BookingResponse struct {
	Reference string `json:"reference,omitempty"`
	Confirmed bool   `json:"confirmed"`
	Redirect  string `json:"redirect,omitempty"`
}

func FromSubmitBookingResult(result *commands.SubmitBookingResult) *BookingResponse {
	resp := &BookingResponse{
		Reference: result.Reference,
		Confirmed: result.Confirmed,
	}
	if result.Confirmed {
		resp.Redirect = "/booking-success"
	}
	return resp
}
