package structs

type Response struct {
	Status      string      `json:"status"`
	Description string      `json:"description"`
	Payload     interface{} `json:"payload,omitempty"`
}
