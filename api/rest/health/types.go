package health

type Response struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type StatusResponse struct {
	Status       string `json:"status"` // "ok" or "degraded"
	Postgres     bool   `json:"postgres"`
	VectorStore  bool   `json:"vector_store"`
	VectorPoints int64  `json:"vector_points"`
}
