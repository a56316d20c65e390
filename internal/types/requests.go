package types

// ProvisionRequest asks for a new machine wired into the gateway.
type ProvisionRequest struct {
	ImageID string `json:"image_id"`
	Name    string `json:"name"`
	Tier    string `json:"tier"`
	// Protocol optionally overrides the protocol inferred from the image.
	Protocol string `json:"protocol,omitempty"`
}

// Validate checks request fields before any side effect is taken.
func (r *ProvisionRequest) Validate() error {
	if r.ImageID == "" {
		return ErrInvalidInput("image_id is required")
	}
	if r.Name == "" {
		return ErrInvalidInput("name is required")
	}
	if _, err := ParseTier(r.Tier); err != nil {
		return ErrInvalidInput("%v", err)
	}
	if r.Protocol != "" && !Protocol(r.Protocol).Valid() {
		return ErrInvalidInput("invalid protocol: %q", r.Protocol)
	}
	return nil
}

// ProvisionResult is returned to the caller on a successful workflow run.
type ProvisionResult struct {
	InstanceID     string   `json:"instance_id"`
	Address        string   `json:"address"`
	ConnectionName string   `json:"connection_name"`
	Protocol       Protocol `json:"protocol"`
}

// TeardownRequest asks for a machine and its gateway connection to be removed.
type TeardownRequest struct {
	Name       string `json:"name"`
	InstanceID string `json:"instance_id"`
}

// Validate checks request fields.
func (r *TeardownRequest) Validate() error {
	if r.Name == "" {
		return ErrInvalidInput("name is required")
	}
	if r.InstanceID == "" {
		return ErrInvalidInput("instance_id is required")
	}
	return nil
}

// LifecycleRequest targets an existing instance for start/stop.
type LifecycleRequest struct {
	InstanceID string `json:"instance_id"`
}

// Validate checks request fields.
func (r *LifecycleRequest) Validate() error {
	if r.InstanceID == "" {
		return ErrInvalidInput("instance_id is required")
	}
	return nil
}

// ErrorResponse is the JSON error envelope returned by the API.
type ErrorResponse struct {
	Error string `json:"error"`
}
