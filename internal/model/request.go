package model

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password,omitempty"`
}

type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

type CalculationRequest struct {
	A    float64 `json:"a"`
	B    float64 `json:"b"`
	Type string  `json:"type"`
}

type ArithmeticRequest struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}
