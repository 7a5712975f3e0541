package structs

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Member struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

type AuthResponse struct {
	Token  string `json:"token"`
	Member Member `json:"member"`
}
