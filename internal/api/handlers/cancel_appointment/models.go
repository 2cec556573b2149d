package cancel_appointment

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelAppointmentResponse HTTP response model
type CancelAppointmentResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}
