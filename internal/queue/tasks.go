package queue

import (
	"encoding/json"

	"github.com/civeni/civeni-api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskCertificateEmail certificate-issued email.
	TaskCertificateEmail = constants.TaskCertificateEmail
	// TaskRegistrationConfirmation registration confirmation email.
	TaskRegistrationConfirmation = constants.TaskRegistrationConfirmation
	// TaskWorkReceivedConfirmation work-received acknowledgment email.
	TaskWorkReceivedConfirmation = constants.TaskWorkReceivedConfirmation
)

// CertificateEmailPayload certificate email task payload.
type CertificateEmailPayload struct {
	CertificateID uint `json:"certificate_id"`
}

// RegistrationConfirmationPayload registration email task payload.
type RegistrationConfirmationPayload struct {
	RegistrationID uint `json:"registration_id"`
}

// WorkReceivedPayload work acknowledgment task payload.
type WorkReceivedPayload struct {
	WorkID uint `json:"work_id"`
}

// NewCertificateEmailTask creates the certificate email task.
func NewCertificateEmailTask(payload CertificateEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCertificateEmail, body), nil
}

// NewRegistrationConfirmationTask creates the registration email task.
func NewRegistrationConfirmationTask(payload RegistrationConfirmationPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskRegistrationConfirmation, body), nil
}

// NewWorkReceivedTask creates the work acknowledgment task.
func NewWorkReceivedTask(payload WorkReceivedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskWorkReceivedConfirmation, body), nil
}
