package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInsurance(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, "POST", "/insurances",
		`{"car_id":1,"company":"Britam","start_date":"2026-01-01","end_date":"2026-12-31","premium":24000,"status":"active"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.NotZero(t, body["id"])
	assert.Equal(t, "Britam", body["company"])
	assert.Equal(t, "2026-01-01", body["start_date"])
	assert.EqualValues(t, 24000, body["premium"])

	t.Run("car existence is not checked", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/insurances", `{"car_id":424242,"company":"APA"}`)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("missing company is rejected", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/insurances", `{"car_id":1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing car_id is rejected", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/insurances", `{"company":"APA"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListInsurances(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, "GET", "/insurances", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
