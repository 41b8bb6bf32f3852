package prompt

import (
	"strings"
	"testing"

	"MedChat_PatientAssistant/internal/models"

	"github.com/stretchr/testify/assert"
)

func sampleUser() models.User {
	return models.User{
		Fullname:        "Ana Torres",
		Allergies:       []string{"penicillin", "pollen"},
		Medications:     []string{"ibuprofen"},
		MedicalHistory:  "asthma",
		SurgicalHistory: []string{"appendectomy"},
		FamilyHistory:   "diabetes",
	}
}

func TestBuildSystemPromptIsDeterministic(t *testing.T) {
	user := sampleUser()
	first := BuildSystemPrompt(user)
	second := BuildSystemPrompt(user)
	assert.Equal(t, first, second, "identical profiles must yield byte-identical prompts")
}

func TestBuildSystemPromptSubstitutesProfileFields(t *testing.T) {
	out := BuildSystemPrompt(sampleUser())

	assert.Contains(t, out, "- Name: Ana Torres")
	assert.Contains(t, out, "- Allergies: penicillin, pollen")
	assert.Contains(t, out, "- Current medications: ibuprofen")
	assert.Contains(t, out, "- Medical history: asthma")
	assert.Contains(t, out, "- Surgical history: appendectomy")
	assert.Contains(t, out, "- Family history: diabetes")
	assert.Contains(t, out, "Hello, are you Ana Torres or is someone else using this account?")
}

func TestBuildSystemPromptEmptyFields(t *testing.T) {
	out := BuildSystemPrompt(models.User{Fullname: "Ana Torres"})

	// empty lists interpolate as empty text, never panic
	assert.Contains(t, out, "- Allergies: \n")
	assert.Contains(t, out, "- Medical history: \n")
	assert.True(t, strings.Contains(out, "MedChat"))
}
