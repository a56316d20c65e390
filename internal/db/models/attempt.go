package models

import "gorm.io/gorm"

// ProvisionStep identifies one side-effecting step of the provisioning
// workflow.
type ProvisionStep string

const (
	StepLaunch   ProvisionStep = "launch"
	StepAddress  ProvisionStep = "address"
	StepIngress  ProvisionStep = "ingress"
	StepRegistry ProvisionStep = "registry"
)

// AttemptStatus is the recorded outcome of a step.
type AttemptStatus string

const (
	AttemptSucceeded AttemptStatus = "succeeded"
	AttemptFailed    AttemptStatus = "failed"
)

// ProvisionAttempt records the outcome of a single workflow step. The rows are
// observational: the workflow never rolls back on failure, so operators use
// them together with the orphan listing to find machines that launched but
// never reached the gateway registry.
type ProvisionAttempt struct {
	gorm.Model
	AttemptID  string        `json:"attempt_id" gorm:"size:36;index;not null"`
	Name       string        `json:"name" gorm:"size:128;index;not null"`
	InstanceID string        `json:"instance_id" gorm:"size:64"`
	Step       ProvisionStep `json:"step" gorm:"size:16;not null"`
	Status     AttemptStatus `json:"status" gorm:"size:16;not null"`
	Error      string        `json:"error,omitempty" gorm:"size:1024"`
}
