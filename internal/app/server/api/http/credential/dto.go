package credential

import (
	"passvault/internal/domain/credential"

	"github.com/google/uuid"
)

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Credentials []credential.Metadata `json:"credentials"`
	Status      string                `json:"status"`
}

type createInput struct {
	Body CreateRequest
}

type CreateRequest struct {
	ServiceName string `json:"service_name" minLength:"1" doc:"Service the credential belongs to"`
	Username    string `json:"username" minLength:"1" doc:"Account name at the service"`
	Secret      string `json:"secret" minLength:"1" doc:"Plaintext secret, encrypted before storage"`
	Category    string `json:"category,omitempty" doc:"Optional grouping label"`
}

type createOutput struct {
	Body MetaResponse
}

type idInput struct {
	ID uuid.UUID `path:"id" doc:"Credential id"`
}

type revealOutput struct {
	Body RevealResponse
}

type RevealResponse struct {
	Secret string `json:"secret"`
	Status string `json:"status"`
}

type updateInput struct {
	ID   uuid.UUID `path:"id" doc:"Credential id"`
	Body UpdateRequest
}

type UpdateRequest struct {
	ServiceName *string `json:"service_name,omitempty" doc:"New service name, omit to keep"`
	Username    *string `json:"username,omitempty" doc:"New username, omit to keep"`
	Category    *string `json:"category,omitempty" doc:"New category, omit to keep"`
	Secret      string  `json:"secret,omitempty" doc:"New plaintext secret, omit to keep"`
}

type metaOutput struct {
	Body MetaResponse
}

type MetaResponse struct {
	Credential credential.Metadata `json:"credential"`
	Status     string              `json:"status"`
}

type statusOutput struct {
	Body StatusResponse
}

type StatusResponse struct {
	Status string `json:"status"`
}
