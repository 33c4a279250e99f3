package dto

type ChatRequest struct {
	Message string `json:"message" example:"What are your store hours?"`
}

type ChatResponse struct {
	Response string `json:"response" example:"9am-5pm daily"`
}
