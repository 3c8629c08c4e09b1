package kernel

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/shashiranjanraj/donorlink/app/models"
	"github.com/shashiranjanraj/donorlink/internal/testdb"
	"github.com/shashiranjanraj/donorlink/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

type api struct {
	t  *testing.T
	db *gorm.DB
	h  http.Handler
}

func newAPI(t *testing.T) *api {
	db := testdb.New(t)
	a := &api{t: t, db: db, h: NewHandler(db, auth.BcryptHasher{Cost: 4})}
	a.do(http.MethodGet, "/", "") // seeds
	return a
}

func (a *api) do(method, target, body string) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	a.h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

const userBody = `{
	"first_name": "asha", "last_name": "rao", "email": "A@X.com",
	"mobile": "9000000000", "password": "pw-1", "isAdmin": true,
	"address": "Pune", "bloodGroup": "O+", "hospital_id": 2, "isDonor": true
}`

func (a *api) register() models.User {
	a.t.Helper()
	rec, env := a.do(http.MethodPost, "/registerUser", userBody)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	var u models.User
	require.NoError(a.t, json.Unmarshal(env.Data, &u))
	return u
}

func TestHomeSeedsAndGreets(t *testing.T) {
	a := newAPI(t)

	rec, env := a.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello World", env.Message)

	_, env = a.do(http.MethodGet, "/getOrgans", "")
	var organs []models.Organ
	require.NoError(t, json.Unmarshal(env.Data, &organs))
	assert.Len(t, organs, 7)

	_, env = a.do(http.MethodGet, "/getHospital", "")
	var hospitals []models.Hospital
	require.NoError(t, json.Unmarshal(env.Data, &hospitals))
	assert.Len(t, hospitals, 6)
	assert.Equal(t, "Apollo Hospital", hospitals[0].HospitalName)
}

func TestRegisterUser(t *testing.T) {
	a := newAPI(t)
	u := a.register()

	assert.Equal(t, "ASHA", u.FirstName)
	assert.Equal(t, "a@x.com", u.Email)
	assert.False(t, u.IsAdmin)
	assert.NotContains(t, u.Password, "pw-1")

	rec, env := a.do(http.MethodPost, "/registerUser", strings.Replace(userBody, "A@X.com", "a@X.COM", 1))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "User already found", env.Message)
}

func TestRegisterUserValidation(t *testing.T) {
	a := newAPI(t)

	rec, env := a.do(http.MethodPost, "/registerUser", `{"first_name":"x","bloodGroup":"TOOLONG"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Errors, "email")
	assert.Contains(t, env.Errors, "hospital_id")
	assert.Contains(t, env.Errors, "bloodGroup")

	rec, _ = a.do(http.MethodPost, "/registerUser", `{"first_name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPasswordByteLimit(t *testing.T) {
	a := newAPI(t)
	body := func(email, password string) string {
		return strings.NewReplacer("A@X.com", email, `"pw-1"`, `"`+password+`"`).Replace(userBody)
	}

	rec, _ := a.do(http.MethodPost, "/registerUser", body("a@x.com", strings.Repeat("p", 72)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, env := a.do(http.MethodPost, "/registerUser", body("b@x.com", strings.Repeat("p", 73)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Errors, "password")

	// 72 characters but 144 bytes: passes validation, rejected by the hasher.
	rec, env = a.do(http.MethodPost, "/registerUser", body("c@x.com", strings.Repeat("é", 72)))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "The password may not be greater than 72 bytes.", env.Message)

	change := func(newPassword string) (*httptest.ResponseRecorder, envelope) {
		q := url.Values{"email": {"a@x.com"}, "old_password": {strings.Repeat("p", 72)}, "new_password": {newPassword}}
		return a.do(http.MethodPut, "/changePassword?"+q.Encode(), "")
	}

	rec, env = change(strings.Repeat("q", 73))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Errors, "new_password")

	rec, env = change(strings.Repeat("é", 40))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "The password may not be greater than 72 bytes.", env.Message)

	rec, _ = change(strings.Repeat("q", 72))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPasswordResponseNeverCarriesPassword(t *testing.T) {
	a := newAPI(t)
	a.register()

	rec, _ := a.do(http.MethodGet, "/getAllUsers", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"password"`)
}

func TestGetUsersByTokenID(t *testing.T) {
	a := newAPI(t)
	u := a.register()

	rec, env := a.do(http.MethodGet, fmt.Sprintf("/getUsersByTokenId?user_id=%d", u.ID), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"email":"a@x.com"`)

	rec, env = a.do(http.MethodGet, "/getUsersByTokenId?user_id=9999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", env.Message)

	rec, _ = a.do(http.MethodGet, "/getUsersByTokenId", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAuthFlow(t *testing.T) {
	a := newAPI(t)
	u := a.register()

	rec, env := a.do(http.MethodPost, "/authenticateUser?email=a@x.com&password=pw-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Authentication successful", env.Message)
	var res struct {
		Token       uint   `json:"token"`
		IsAdmin     bool   `json:"isAdmin"`
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, u.ID, res.Token)
	assert.NotEmpty(t, res.AccessToken)

	rec, env = a.do(http.MethodPost, "/authenticateUser?email=a@x.com&password=nope", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Incorrect password", env.Message)

	rec, _ = a.do(http.MethodPost, "/authenticateUser?email=z@x.com&password=pw-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = a.do(http.MethodPut, "/forgotPassword?email=A@x.com", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var reset map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &reset))
	code := reset["temporaryPassword"]
	assert.Regexp(t, `^\d{6}$`, code)

	q := url.Values{"email": {"a@x.com"}, "old_password": {code}, "new_password": {"pw 2"}}
	rec, env = a.do(http.MethodPut, "/changePassword?"+q.Encode(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Password Changed successfully", env.Message)

	rec, _ = a.do(http.MethodPost, "/authenticateUser?"+url.Values{"email": {"a@x.com"}, "password": {"pw 2"}}.Encode(), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContributeAndHistory(t *testing.T) {
	a := newAPI(t)
	u := a.register()

	var kidney models.Organ
	require.NoError(t, a.db.Where("organ_name = ?", "Kidney").First(&kidney).Error)

	rec, env := a.do(http.MethodGet, fmt.Sprintf("/previousContributions/%d", u.ID), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))

	rec, env = a.do(http.MethodPut, fmt.Sprintf("/contribute/%d/%d", u.ID, kidney.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Contribution Placed successfully", env.Message)

	_, env = a.do(http.MethodGet, fmt.Sprintf("/previousContributions/%d", u.ID), "")
	assert.JSONEq(t, `[{"organ_name":"Kidney","recipient_name":null,"donation_status":null}]`, string(env.Data))

	rec, env = a.do(http.MethodPut, fmt.Sprintf("/contribute/%d/999", u.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Organ ID 999 : Does Not Exists", env.Message)

	rec, env = a.do(http.MethodPut, "/contribute/abc/1", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Errors, "user_id")

	var n int64
	require.NoError(t, a.db.Model(&models.Donation{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestRequestAndHistory(t *testing.T) {
	a := newAPI(t)
	u := a.register()

	rec, _ := a.do(http.MethodPut, fmt.Sprintf("/request/%d/1", u.ID), "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, env := a.do(http.MethodPut, fmt.Sprintf("/request/%d/1?reason=renal+failure", u.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Request Placed successfully", env.Message)

	rec, _ = a.do(http.MethodPut, fmt.Sprintf("/request/%d/1?reason=", u.ID), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var reasons []string
	require.NoError(t, a.db.Model(&models.Donation{}).Order("id").Pluck("reason", &reasons).Error)
	assert.Equal(t, []string{"renal failure", ""}, reasons)

	rec, env = a.do(http.MethodPut, "/request/9999/1?reason=x", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User ID 9999 : Does Not Exists", env.Message)

	_, env = a.do(http.MethodGet, fmt.Sprintf("/previousRequests/%d", u.ID), "")
	assert.JSONEq(t, `[
		{"organ_name":"Kidney","recipient_name":null,"donation_status":null},
		{"organ_name":"Kidney","recipient_name":null,"donation_status":null}
	]`, string(env.Data))

	rec, env = a.do(http.MethodGet, "/previousRequests/x", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Errors, "user_id")
}

func TestDonorsAndRecipients(t *testing.T) {
	a := newAPI(t)
	a.register()

	_, env := a.do(http.MethodGet, "/getDonors", "")
	var donors []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &donors))
	require.Len(t, donors, 1)
	assert.Equal(t, "Medanta", donors[0]["hospital_name"])

	_, env = a.do(http.MethodGet, "/getRecipients", "")
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestMetricsAndHeaders(t *testing.T) {
	a := newAPI(t)

	rec, _ := a.do(http.MethodGet, "/getOrgans", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec, _ = a.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "donorlink_http_requests_total")

	rec, env := a.do(http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, env.Status)
}
