package models

// Verification probe methods.
const (
	VerifyMethodListModels     = "models.list"
	VerifyMethodChatCompletion = "chat.completions.create"
)

// VerificationResult is the typed outcome of a credential probe. A failed
// verification is an expected result of normal use, not an error.
type VerificationResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Method  string `json:"method,omitempty"`
}
