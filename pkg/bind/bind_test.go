package bind_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shashiranjanraj/donorlink/pkg/bind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerInput struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	BloodGroup string `json:"bloodGroup" validate:"required,max=3"`
	HospitalID uint   `json:"hospital_id" validate:"required"`
}

func TestJSONValid(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"first_name":"Asha","bloodGroup":"O+","hospital_id":2}`))

	var in registerInput
	errs, err := bind.JSON(req, &in)
	require.NoError(t, err)
	assert.False(t, bind.HasErrors(errs))
	assert.Equal(t, "Asha", in.FirstName)
}

func TestJSONReportsWireFieldNames(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"first_name":"","bloodGroup":"AB+X"}`))

	var in registerInput
	errs, err := bind.JSON(req, &in)
	require.NoError(t, err)

	assert.Equal(t, "The first_name field is required.", errs["first_name"])
	assert.Equal(t, "The bloodGroup may not be greater than 3 characters.", errs["bloodGroup"])
	assert.Contains(t, errs, "hospital_id")
}

func TestJSONMalformed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"first_name":`))

	var in registerInput
	_, err := bind.JSON(req, &in)
	assert.ErrorContains(t, err, "invalid JSON")
}

func TestStructUsesQueryTags(t *testing.T) {
	type changeInput struct {
		Email       string `query:"email" validate:"required"`
		NewPassword string `query:"new_password" validate:"required,max=100"`
	}

	errs := bind.Struct(&changeInput{Email: "a@x.com"})
	assert.Equal(t, map[string]string{"new_password": "The new_password field is required."}, errs)
	assert.Nil(t, bind.Struct(&changeInput{Email: "a@x.com", NewPassword: "n"}))
}
