// Package api - Request/response types and validation
package api

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"

	"archcost/core/types"
	"archcost/internal/errors"
)

// EstimateRequest is the POST /estimate payload. Omitted traffic fields take
// the documented defaults, so a minimal request only needs an architecture
// and a user count.
type EstimateRequest struct {
	Architecture string             `json:"architecture"`
	Traffic      types.TrafficInput `json:"traffic"`
	Currency     string             `json:"currency"`
}

// UnmarshalJSON decodes the request with the traffic block pre-seeded to its
// defaults, so partially specified traffic behaves like the documented API.
func (r *EstimateRequest) UnmarshalJSON(data []byte) error {
	type plain EstimateRequest
	aux := plain{Traffic: types.DefaultTraffic()}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = EstimateRequest(aux)
	return nil
}

// LoginRequest is the POST /admin/login payload
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued admin token
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

var validate = validator.New()

// validateEstimateRequest checks the architecture and the traffic field
// constraints, returning the first violation as an input error.
func validateEstimateRequest(req *EstimateRequest) error {
	arch := types.Architecture(req.Architecture)
	if !arch.Valid() {
		return errors.Newf(errors.TypeInput,
			"unknown architecture %q, expected one of: monolith, microservices, serverless, hybrid",
			req.Architecture)
	}

	if err := validate.Struct(req.Traffic); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			v := verrs[0]
			return errors.Newf(errors.TypeInput,
				"invalid traffic input: field %s failed constraint %q", v.Field(), v.Tag())
		}
		return errors.Wrap(errors.TypeInput, "invalid traffic input", err)
	}
	return nil
}
