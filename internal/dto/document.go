package dto

type IngestResponse struct {
	Documents int `json:"documents"`
	Chunks    int `json:"chunks"`
}
