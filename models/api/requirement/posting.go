package reqapimodels

import (
	"hiring-hare-backend/models"
	apimodels "hiring-hare-backend/models/api"
)

type PostingStatusData struct {
	Status models.PostingStatus `json:"status" validate:"required,oneof=ACTIVE PAUSED CLOSED"`
}

func (r PostingStatusData) Validate() error {
	return apimodels.ValidateStruct(r)
}

type PostingFilter struct {
	apimodels.Pagination
	PostingStatus models.PostingStatus `json:"posting_status"`
	Search        string               `json:"search"`
}
