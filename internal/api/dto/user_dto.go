package dto

// ProfileUpdateRequest payload for profile edits. Empty fields keep stored values.
type ProfileUpdateRequest struct {
	Name  string `json:"name" validate:"omitempty,max=50"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,max=30"`
}

// AddressRequest payload for address create and update. Omitted fields are left unchanged.
type AddressRequest struct {
	Title      *string `json:"title" validate:"omitempty,max=50"`
	FullName   *string `json:"fullName" validate:"omitempty,max=100"`
	Phone      *string `json:"phone" validate:"omitempty,max=30"`
	Street     *string `json:"street" validate:"omitempty,max=200"`
	City       *string `json:"city" validate:"omitempty,max=100"`
	District   *string `json:"district" validate:"omitempty,max=100"`
	PostalCode *string `json:"postalCode" validate:"omitempty,max=20"`
	Country    *string `json:"country" validate:"omitempty,max=100"`
	IsDefault  *bool   `json:"isDefault"`
}
