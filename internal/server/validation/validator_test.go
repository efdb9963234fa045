package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/studentteacher/internal/common"
	"github.com/dmitrijs2005/studentteacher/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func validDraft() models.DraftUser {
	return models.DraftUser{
		FirstName:   "Ann",
		LastName:    "Lee",
		Email:       "ann@x.com",
		Password:    "Abc123",
		DateOfBirth: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidate_Valid(t *testing.T) {
	v := New(func() time.Time { return fixedNow })
	require.NoError(t, v.Validate(validDraft()))
}

func TestValidate_FieldErrors(t *testing.T) {
	v := New(func() time.Time { return fixedNow })

	tests := []struct {
		name   string
		mutate func(*models.DraftUser)
		field  string
	}{
		{"empty first name", func(d *models.DraftUser) { d.FirstName = "" }, FieldFirstName},
		{"blank first name", func(d *models.DraftUser) { d.FirstName = "   " }, FieldFirstName},
		{"blank last name", func(d *models.DraftUser) { d.LastName = "\t" }, FieldLastName},
		{"birth in future", func(d *models.DraftUser) { d.DateOfBirth = fixedNow.Add(time.Second) }, FieldDateOfBirth},
		{"not an email", func(d *models.DraftUser) { d.Email = "not-an-email" }, FieldEmail},
		{"tld too long", func(d *models.DraftUser) { d.Email = "a@b.abcdefg" }, FieldEmail},
		{"tld too short", func(d *models.DraftUser) { d.Email = "a@b.c" }, FieldEmail},
		{"space in local part", func(d *models.DraftUser) { d.Email = "a b@x.com" }, FieldEmail},
		{"missing upper", func(d *models.DraftUser) { d.Password = "short1" }, FieldPassword},
		{"missing lower", func(d *models.DraftUser) { d.Password = "ABC123" }, FieldPassword},
		{"missing digit", func(d *models.DraftUser) { d.Password = "Abcdef" }, FieldPassword},
		{"too short", func(d *models.DraftUser) { d.Password = "Ab1" }, FieldPassword},
		{"inner space", func(d *models.DraftUser) { d.Password = "Abc 123" }, FieldPassword},
		{"trailing space", func(d *models.DraftUser) { d.Password = "Abc123 " }, FieldPassword},
		{"arabic-indic digits", func(d *models.DraftUser) { d.Password = "Abc١٢٣" }, FieldPassword},
		{"greek upper", func(d *models.DraftUser) { d.Password = "Ωωx123" }, FieldPassword},
		{"accented upper and arabic-indic digits", func(d *models.DraftUser) { d.Password = "ÉÀb١٢c" }, FieldPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)

			err := v.Validate(d)
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrInvalidField))

			var fe *common.InvalidFieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestValidate_ReportsFirstFieldInOrder(t *testing.T) {
	v := New(func() time.Time { return fixedNow })

	d := validDraft()
	d.LastName = ""
	d.Email = "bad"
	d.Password = "bad"

	var fe *common.InvalidFieldError
	require.True(t, errors.As(v.Validate(d), &fe))
	assert.Equal(t, FieldLastName, fe.Field)
}

func TestValidate_BirthTodayIsAllowed(t *testing.T) {
	v := New(func() time.Time { return fixedNow })
	d := validDraft()
	d.DateOfBirth = fixedNow
	assert.NoError(t, v.Validate(d))
}

func TestValidatePassword_NonASCIIExtrasAllowed(t *testing.T) {
	assert.NoError(t, ValidatePassword("Abc123é"))
	assert.NoError(t, ValidatePassword("Zz9!ΩΩ"))
}

func TestValidateEmail_Accepts(t *testing.T) {
	for _, e := range []string{"ann@x.com", "first.last-1_x@sub.domain.io", "A1@b-c.museum"} {
		assert.NoError(t, ValidateEmail(e), e)
	}
}

func TestNew_DefaultsToWallClock(t *testing.T) {
	v := New(nil)
	d := validDraft()
	d.DateOfBirth = time.Now().Add(time.Hour)
	assert.Error(t, v.Validate(d))
}
