package dto

type TokenResponse struct {
	Token string `json:"token"`
}
