package storeapi

// Product describes a catalog item in transport-friendly form.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// LoginResponse mirrors the payload returned by /auth/login.
type LoginResponse struct {
	Token string `json:"token"`
}

// loginRequest is the body sent to /auth/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// apiError mirrors the error body some endpoints return on failure.
type apiError struct {
	Message string `json:"msg"`
}
