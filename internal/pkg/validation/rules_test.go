package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniversityEmailPattern(t *testing.T) {
	valid := []string{
		"ab123@snu.edu.in",
		"first.last@snu.edu.in",
		"x_y+z@students.snu.edu.in",
	}
	for _, email := range valid {
		assert.True(t, CompiledPatterns.UniversityEmail.MatchString(email), email)
	}

	invalid := []string{
		"ab123@gmail.com",
		"ab123@snu.edu.in.evil.com",
		"ab123@snuXedu.in",
		"@snu.edu.in",
	}
	for _, email := range invalid {
		assert.False(t, CompiledPatterns.UniversityEmail.MatchString(email), email)
	}
}

func TestContactPattern(t *testing.T) {
	assert.True(t, CompiledPatterns.Contact.MatchString("9876543210"))
	assert.False(t, CompiledPatterns.Contact.MatchString("987654321"))
	assert.False(t, CompiledPatterns.Contact.MatchString("98765432101"))
	assert.False(t, CompiledPatterns.Contact.MatchString("98765x3210"))
}

func TestFoodCodePattern(t *testing.T) {
	assert.True(t, CompiledPatterns.FoodCode.MatchString("1042"))
	assert.True(t, CompiledPatterns.FoodCode.MatchString("0001"))
	assert.False(t, CompiledPatterns.FoodCode.MatchString("104"))
	assert.False(t, CompiledPatterns.FoodCode.MatchString("10425"))
	assert.False(t, CompiledPatterns.FoodCode.MatchString("10a2"))
}

func TestStringValidation(t *testing.T) {
	assert.False(t, NewStringValidation("").Validate())
	assert.True(t, NewStringValidation("").WithRequired(false).Validate())
	assert.True(t, NewStringValidation("hello").WithMinLength(3).WithMaxLength(10).Validate())
	assert.False(t, NewStringValidation("hi").WithMinLength(3).Validate())
	assert.False(t, NewStringValidation("toolongvalue").WithMaxLength(5).Validate())
	assert.True(t, NewStringValidation("user@snu.edu.in").WithPattern(CompiledPatterns.Email).Validate())
	assert.False(t, NewStringValidation("not-an-email").WithPattern(CompiledPatterns.Email).Validate())
}
