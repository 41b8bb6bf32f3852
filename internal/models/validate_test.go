package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("ana@example.com"))
	assert.NoError(t, ValidateEmail("a.b+tag@sub-domain.co"))

	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@domain"))
	assert.Error(t, ValidateEmail("@example.com"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("Aa1!aaaa"))

	assert.Error(t, ValidatePassword("short1!"), "too short")
	assert.Error(t, ValidatePassword("alllower1!"), "no upper case")
	assert.Error(t, ValidatePassword("ALLUPPER1!"), "no lower case")
	assert.Error(t, ValidatePassword("NoDigits!!"), "no digit")
	assert.Error(t, ValidatePassword("NoSpecial1a"), "no special character")
}

func TestValidateAge(t *testing.T) {
	assert.NoError(t, ValidateAge(0))
	assert.NoError(t, ValidateAge(120))
	assert.Error(t, ValidateAge(-1))
	assert.Error(t, ValidateAge(121))
}

func TestValidateGender(t *testing.T) {
	assert.NoError(t, ValidateGender(GenderMale))
	assert.NoError(t, ValidateGender(GenderFemale))
	assert.NoError(t, ValidateGender(GenderOther))
	assert.Error(t, ValidateGender(""))
	assert.Error(t, ValidateGender("unknown"))
}

func TestValidateFullname(t *testing.T) {
	assert.NoError(t, ValidateFullname("Ana"))
	assert.Error(t, ValidateFullname("Al"))
	assert.Error(t, ValidateFullname("  a "))

	long := make([]byte, 51)
	for i := range long {
		long[i] = 'x'
	}
	assert.Error(t, ValidateFullname(string(long)))
}

func TestValidationErrorNamesField(t *testing.T) {
	err := ValidateGender("robot")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "gender", vErr.Field)
}

func TestUserUpdateValidate(t *testing.T) {
	age := 200
	upd := UserUpdate{Age: &age}
	assert.Error(t, upd.Validate())

	assert.NoError(t, UserUpdate{}.Validate(), "empty update carries nothing to reject")
}
