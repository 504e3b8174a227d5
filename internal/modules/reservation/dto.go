package reservation

// CreateReservationRequest is the public booking submission. TotalPrice is
// accepted for wire compatibility with older clients but always re-derived
// server-side from the slot count.
type CreateReservationRequest struct {
	Date       string   `json:"date" binding:"required" validate:"required"`
	TimeSlots  []string `json:"timeSlots" binding:"required" validate:"required,min=1"`
	Name       string   `json:"name" binding:"required" validate:"required"`
	Email      string   `json:"email" binding:"required" validate:"required,email"`
	Phone      string   `json:"phone" binding:"required" validate:"required"`
	Company    string   `json:"company"`
	Message    string   `json:"message"`
	TotalPrice int      `json:"totalPrice"`
}

// UpdateReservationRequest is an admin partial update. Nil fields are left
// unchanged. Date or slot changes are re-validated against all other
// reservations before commit.
type UpdateReservationRequest struct {
	Date      *string  `json:"date"`
	TimeSlots []string `json:"timeSlots"`
	Name      *string  `json:"name"`
	Email     *string  `json:"email"`
	Phone     *string  `json:"phone"`
	Company   *string  `json:"company"`
	Message   *string  `json:"message"`
	Status    *string  `json:"status"`
}

type CheckAvailabilityRequest struct {
	Date      string   `json:"date" binding:"required"`
	TimeSlots []string `json:"timeSlots" binding:"required"`
}

type CheckAvailabilityResponse struct {
	Available   bool     `json:"available"`
	BookedSlots []string `json:"bookedSlots"`
}

type AvailabilityResponse struct {
	Date        string   `json:"date"`
	Open        bool     `json:"open"`
	FreeSlots   []string `json:"freeSlots"`
	BookedSlots []string `json:"bookedSlots"`
}
