// Package models contains data types and constants for the Gemini REST API.
package models

// DefaultBaseURL is the Gemini API host
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// GenerateContentPath returns the request path for a model's generateContent call
func GenerateContentPath(model string) string {
	return "/v1beta/models/" + model + ":generateContent"
}

// Available model names
const (
	ModelFlash = "gemini-2.5-flash"
	ModelPro   = "gemini-2.5-pro"

	// DefaultModel is the recommended default
	DefaultModel = ModelFlash
)

// AllModels returns the list of known model names
func AllModels() []string {
	return []string{ModelFlash, ModelPro}
}

// ModelFromName resolves a model name or alias to a concrete model.
// Unknown names pass through unchanged so new server-side models work
// without a client update.
func ModelFromName(name string) string {
	switch name {
	case "", "fast", "flash":
		return ModelFlash
	case "pro":
		return ModelPro
	default:
		return name
	}
}
